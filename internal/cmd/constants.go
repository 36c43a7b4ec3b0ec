package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the derived LGO constants",
	Long: `Print the physical inputs and the constants derived from them. The values
are fixed at build time; every run of the predictor uses exactly these.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := predictor.DefaultConstants()
		fmt.Printf("Muon Mass (kg):            %e\n", predictor.MuonMass)
		fmt.Printf("Electron Mass (kg):        %e\n", predictor.ElectronMass)
		fmt.Printf("Phi Dampener (Phi/2):      %.9f\n", predictor.PhiDampener)
		fmt.Println()
		fmt.Printf("LGO Static Constant (C):   %.9f\n", c.CStatic)
		fmt.Printf("Zeta-Stabilized (C_LGO*):  %.9f\n", c.CStar)
		fmt.Printf("ln(C_LGO*):                %.9f\n", c.LnCStar)
		fmt.Printf("Zeta Critical Line:        %.9f\n", c.ZetaCritical)
	},
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}
