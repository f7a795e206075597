package cpu65816

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// conformanceCasesJSON holds a hand-authored sample in the same shape as
// github.com/TomHarte/ProcessorTests' wdc65816 single-step suite (no
// network access here to pull the real multi-million-case corpus, but the
// harness in conformance.go ingests either one identically).
const conformanceCasesJSON = `[
  {
    "name": "LDA #$00 sets Z, clears N",
    "initial": {"pc": 32768, "s": 511, "p": 48, "a": 4761, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[32768, 169], [32769, 0]]},
    "final":   {"pc": 32770, "s": 511, "p": 50, "a": 4608, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": []}
  },
  {
    "name": "LDA #$FF sets N, clears Z",
    "initial": {"pc": 36864, "s": 511, "p": 48, "a": 0, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[36864, 169], [36865, 255]]},
    "final":   {"pc": 36866, "s": 511, "p": 176, "a": 255, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": []}
  },
  {
    "name": "ADC #$01 to $7F overflows into negative",
    "initial": {"pc": 45056, "s": 511, "p": 48, "a": 127, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[45056, 105], [45057, 1]]},
    "final":   {"pc": 45058, "s": 511, "p": 240, "a": 128, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": []}
  },
  {
    "name": "STA !abs writes A, flags untouched",
    "initial": {"pc": 49152, "s": 511, "p": 48, "a": 66, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[49152, 141], [49153, 0], [49154, 32]]},
    "final":   {"pc": 49155, "s": 511, "p": 48, "a": 66, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[49152, 141], [49153, 0], [49154, 32], [8192, 66]]}
  },
  {
    "name": "BEQ taken adds displacement",
    "initial": {"pc": 53248, "s": 511, "p": 50, "a": 0, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[53248, 240], [53249, 5]]},
    "final":   {"pc": 53255, "s": 511, "p": 50, "a": 0, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": []}
  },
  {
    "name": "INX wraps 16-bit X from $FFFF to $0000, sets Z",
    "initial": {"pc": 57344, "s": 511, "p": 32, "a": 0, "x": 65535, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": [[57344, 232]]},
    "final":   {"pc": 57345, "s": 511, "p": 34, "a": 0, "x": 0, "y": 0, "dbr": 0, "pbr": 0, "d": 0, "e": 0, "ram": []}
  }
]`

func TestConformanceCases(t *testing.T) {
	var cases []ConformanceCase
	require.NoError(t, json.Unmarshal([]byte(conformanceCasesJSON), &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			diffs := tc.Run()
			require.Empty(t, diffs, "%v", diffs)
		})
	}
}
