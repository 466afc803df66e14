package output

import (
	"fmt"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
	"golang.org/x/text/language"
)

// GenerateAssumptions lists the modeling assumptions behind one projection.
func GenerateAssumptions(in domain.ProjectionInput, tag language.Tag) []string {
	rates := calculation.ConvertRates(in.AnnualReturnRate, in.InflationRate)
	return []string{
		fmt.Sprintf("Deposit of %s at the end of every month, starting from a zero balance", FormatAmount(in.MonthlyContribution, tag)),
		fmt.Sprintf("Nominal return %s per year, compounded monthly at %.4f%%", FormatPercentage(in.AnnualReturnRate), rates.Return*100),
		fmt.Sprintf("Inflation %s per year (%.4f%% per month)", FormatPercentage(in.InflationRate), rates.Inflation*100),
		fmt.Sprintf("Real values grow at %.4f%% per month (Fisher relation); deposits are not deflated", rates.RealReturn*100),
		"Reported amounts are rounded to whole units, each field on its own",
	}
}
