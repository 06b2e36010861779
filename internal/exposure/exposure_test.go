package exposure_test

import (
	"errors"
	"testing"

	"obsid/internal/exposure"
)

// Known identifiers from the observatory's catalog, one per controller
// family: on-sky, camera control, and simulation.
func TestComposeIDKnownValues(t *testing.T) {
	cases := []struct {
		dayObs     int
		seqNum     int
		controller rune
		want       int64
	}{
		{20220628, 4, 'O', 2022062800004},
		{20210908, 749, 'O', 2021090800749},
		{20221011, 1105, 'O', 2022101101105},
		{20211214, 75, 'C', 3021121400075},
		{20240321, 720, 'S', 7024032100720},
		{20200911, 4, 'O', 2020091100004},
	}
	for _, tc := range cases {
		got, err := exposure.ComposeID(tc.dayObs, tc.seqNum, tc.controller)
		if err != nil {
			t.Fatalf("ComposeID(%d, %d, %q): %v", tc.dayObs, tc.seqNum, tc.controller, err)
		}
		if got != tc.want {
			t.Errorf("ComposeID(%d, %d, %q) = %d, want %d", tc.dayObs, tc.seqNum, tc.controller, got, tc.want)
		}
	}
}

func TestDecomposeIDInvertsCompose(t *testing.T) {
	for _, controller := range exposure.Controllers {
		id, err := exposure.ComposeID(20230615, 123, controller)
		if err != nil {
			t.Fatalf("ComposeID(%q): %v", controller, err)
		}
		dayObs, seqNum, got, err := exposure.DecomposeID(id)
		if err != nil {
			t.Fatalf("DecomposeID(%d): %v", id, err)
		}
		if dayObs != 20230615 || seqNum != 123 || got != controller {
			t.Errorf("DecomposeID(%d) = (%d, %d, %q), want (20230615, 123, %q)", id, dayObs, seqNum, got, controller)
		}
	}
}

func TestComposeIDRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name       string
		dayObs     int
		seqNum     int
		controller rune
		wantErr    error
	}{
		{"seq_num too large", 20230615, 100000, 'O', exposure.ErrSeqNumTooLarge},
		{"negative seq_num", 20230615, -1, 'O', exposure.ErrSeqNumTooLarge},
		{"unknown controller", 20230615, 0, 'X', exposure.ErrUnknownController},
		{"year before 2000", 19991231, 0, 'O', exposure.ErrMalformedDayObs},
		{"year after 2999", 30000101, 0, 'O', exposure.ErrMalformedDayObs},
		{"seven digit day", 2023061, 0, 'O', exposure.ErrMalformedDayObs},
		{"zero month", 20230015, 0, 'O', exposure.ErrMalformedDayObs},
		{"zero day", 20230600, 0, 'O', exposure.ErrMalformedDayObs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := exposure.ComposeID(tc.dayObs, tc.seqNum, tc.controller); !errors.Is(err, tc.wantErr) {
				t.Fatalf("ComposeID = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDecomposeIDRejectsBadIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		id   int64
	}{
		{"negative", -1},
		{"too many digits", 10_000_000_000_000},
		{"day component below alphabet", 1022062800004},
		{"day component past alphabet", 9022062800004},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := exposure.DecomposeID(tc.id); !errors.Is(err, exposure.ErrMalformedID) {
				t.Fatalf("DecomposeID(%d) = %v, want ErrMalformedID", tc.id, err)
			}
		})
	}
}

func TestVisitIDConvention(t *testing.T) {
	const exposureID = int64(2022101101105)

	if got := exposure.VisitID(exposureID, false); got != exposureID {
		t.Fatalf("VisitID(plain) = %d, want %d", got, exposureID)
	}
	if got := exposure.VisitID(exposureID, true); got != 92022101101105 {
		t.Fatalf("VisitID(reinterpreted) = %d, want 92022101101105", got)
	}

	id, reinterpreted, err := exposure.SplitVisitID(92022101101105)
	if err != nil {
		t.Fatalf("SplitVisitID: %v", err)
	}
	if id != exposureID || !reinterpreted {
		t.Fatalf("SplitVisitID = (%d, %t), want (%d, true)", id, reinterpreted, exposureID)
	}

	id, reinterpreted, err = exposure.SplitVisitID(exposureID)
	if err != nil {
		t.Fatalf("SplitVisitID: %v", err)
	}
	if id != exposureID || reinterpreted {
		t.Fatalf("SplitVisitID = (%d, %t), want (%d, false)", id, reinterpreted, exposureID)
	}
}

func TestSplitVisitIDRejectsBadLeadingDigits(t *testing.T) {
	cases := []int64{
		52022101101105,  // leading 5
		12022101101105,  // leading 1
		992022101101105, // two extra digits
		-2022101101105,
	}
	for _, id := range cases {
		if _, _, err := exposure.SplitVisitID(id); !errors.Is(err, exposure.ErrMalformedVisitID) {
			t.Errorf("SplitVisitID(%d) = %v, want ErrMalformedVisitID", id, err)
		}
	}
}
