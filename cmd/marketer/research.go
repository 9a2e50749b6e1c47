package main

import (
	"strings"

	"github.com/spf13/cobra"

	"marketer_backend/internal/app/di"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research companies and contacts through SearXNG",
}

var researchCompanyCmd = &cobra.Command{
	Use:   "company <name or url>",
	Short: "Build a company profile from web and news search",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := di.NewResearchUsecase(cfg.SearXNG)
		profile, err := uc.ResearchCompany(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), profile)
	},
}

var researchContactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Find title, social links and bio for a person",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		company, _ := cmd.Flags().GetString("company")
		email, _ := cmd.Flags().GetString("email")

		uc := di.NewResearchUsecase(cfg.SearXNG)
		return printJSON(cmd.OutOrStdout(), uc.EnrichContact(cmd.Context(), name, company, email))
	},
}

func init() {
	researchContactCmd.Flags().String("name", "", "full name of the contact")
	researchContactCmd.Flags().String("company", "", "company the contact works for")
	researchContactCmd.Flags().String("email", "", "email address (optional)")
	_ = researchContactCmd.MarkFlagRequired("name")
	_ = researchContactCmd.MarkFlagRequired("company")

	researchCmd.AddCommand(researchCompanyCmd, researchContactCmd)
	rootCmd.AddCommand(researchCmd)
}
