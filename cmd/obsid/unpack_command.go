package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"obsid/internal/exposure"
	"obsid/internal/logging"
)

type unpackResult struct {
	Packed        uint64 `json:"packed"`
	DayObs        int    `json:"day_obs"`
	SeqNum        int    `json:"seq_num"`
	Detector      int    `json:"detector"`
	Controller    string `json:"controller"`
	Reinterpreted bool   `json:"reinterpreted"`
	ExposureID    int64  `json:"exposure_id,omitempty"`
	VisitID       int64  `json:"visit_id,omitempty"`
}

func newUnpackCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <packed-id>",
		Short: "Recover the observation fields behind a packed identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("packed id must be a non-negative integer: %w", err)
			}
			packer, err := ctx.packer()
			if err != nil {
				return err
			}
			key, err := packer.Unpack(packed)
			if err != nil {
				return err
			}

			logger := logging.WithContext(cmd.Context(), ctx.componentLogger("unpack"))
			result := unpackResult{
				Packed:        packed,
				DayObs:        key.DayObs,
				SeqNum:        key.SeqNum,
				Detector:      key.Detector,
				Controller:    string(key.Controller),
				Reinterpreted: key.Reinterpreted,
			}
			// The exposure/visit view is informational; keys outside the
			// exposure-ID envelope still unpack fine without it.
			if exposureID, err := exposure.ComposeID(key.DayObs, key.SeqNum, key.Controller); err == nil {
				result.ExposureID = exposureID
				result.VisitID = exposure.VisitID(exposureID, key.Reinterpreted)
			} else {
				logger.Debug("no exposure id for key", logging.Error(err), slog.Int("day_obs", key.DayObs))
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			rows := [][]string{
				{"Day Obs", fmt.Sprintf("%d", key.DayObs)},
				{"Seq Num", fmt.Sprintf("%d", key.SeqNum)},
				{"Detector", fmt.Sprintf("%d", key.Detector)},
				{"Controller", string(key.Controller)},
				{"Reinterpreted", formatBool(key.Reinterpreted)},
			}
			if result.ExposureID != 0 {
				rows = append(rows,
					[]string{"Exposure ID", groupedInt(result.ExposureID)},
					[]string{"Visit ID", groupedInt(result.VisitID)},
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
	return cmd
}
