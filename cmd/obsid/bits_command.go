package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obsid/internal/packers"
)

type bitsResult struct {
	Strategy          string   `json:"strategy"`
	MaxBits           int      `json:"max_bits"`
	NVisitDefinitions int      `json:"n_visit_definitions"`
	NControllers      int      `json:"n_controllers"`
	NDays             int      `json:"n_days"`
	NSeqNums          int      `json:"n_seq_nums"`
	NDetectors        int      `json:"n_detectors"`
	DayObsBegin       int      `json:"day_obs_begin"`
	Registered        []string `json:"registered"`
}

func newBitsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits",
		Short: "Show the identifier bit budget of the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			packerCfg, err := ctx.packerConfig()
			if err != nil {
				return err
			}
			packer, err := ctx.packer()
			if err != nil {
				return err
			}
			result := bitsResult{
				Strategy:          cfg.Packer.Strategy,
				MaxBits:           packer.MaxBits(),
				NVisitDefinitions: packerCfg.NVisitDefinitions,
				NControllers:      packerCfg.NControllers,
				NDays:             packerCfg.NDays,
				NSeqNums:          packerCfg.NSeqNums,
				NDetectors:        packerCfg.NDetectors,
				DayObsBegin:       packerCfg.DayObsBegin,
				Registered:        packers.Names(),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			rows := [][]string{
				{"Strategy", result.Strategy},
				{"Max Bits", fmt.Sprintf("%d", result.MaxBits)},
				{"Visit Definitions", fmt.Sprintf("%d", result.NVisitDefinitions)},
				{"Controllers", fmt.Sprintf("%d", result.NControllers)},
				{"Days", fmt.Sprintf("%d", result.NDays)},
				{"Seq Nums", fmt.Sprintf("%d", result.NSeqNums)},
				{"Detectors", fmt.Sprintf("%d", result.NDetectors)},
				{"Day Obs Begin", fmt.Sprintf("%d", result.DayObsBegin)},
				{"Registered", strings.Join(result.Registered, ", ")},
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
