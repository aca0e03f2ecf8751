package utils

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const noHighUtilization = "No subnets at or above the utilization threshold."

// DrawUtilizationReport prints the report header and one table per region
func DrawUtilizationReport(account *model.AccountInfo, report model.AnalysisReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏥 IPAM DOCTOR CHECKUP"))
	if account != nil {
		fmt.Printf(" %s: %s\n", accountLabel(account.Provider), text.FgBlue.Sprint(account.AccountID))
		if account.AccountName != "" && account.AccountName != account.AccountID {
			fmt.Printf(" Name: %s\n", text.FgBlue.Sprint(account.AccountName))
		}
	}
	fmt.Printf(" Threshold: %s\n", text.FgHiYellow.Sprintf("%g%%", report.Threshold))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	fmt.Println(RenderUtilizationReport(report.Index))
}

// RenderUtilizationReport renders a ***REGION*** header and a table of
// subnets for every region of the index, in index order
func RenderUtilizationReport(index model.HighUtilizationIndex) string {
	if index.Len() == 0 {
		return text.FgHiGreen.Sprint(noHighUtilization)
	}

	var sb strings.Builder
	for i, region := range index.Regions {
		bucket := index.Buckets[region]
		if len(bucket) == 0 {
			continue
		}
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(text.FgHiCyan.Sprintf("***%s***", strings.ToUpper(region)))
		sb.WriteString("\n")
		sb.WriteString(renderRegionTable(bucket))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderRegionTable(results []model.UtilizationResult) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Subnet Name", "Subnet Size", "Active IPs", "Utilization"})

	for _, result := range results {
		tw.AppendRow(table.Row{
			result.SubnetName,
			result.TotalSize,
			result.ActiveCount,
			colorUtilization(result),
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return tw.Render()
}

func colorUtilization(result model.UtilizationResult) string {
	formatted := FormatUtilization(result)

	switch {
	case result.Utilization >= 90:
		return text.FgHiRed.Sprint(formatted)
	case result.Utilization >= 75:
		return text.FgHiYellow.Sprint(formatted)
	default:
		return formatted
	}
}

// FormatUtilization formats the utilization as a whole percent
func FormatUtilization(result model.UtilizationResult) string {
	return fmt.Sprintf("%d%%", result.RoundedUtilization())
}

// DrawSkipSummary prints the analysis footer
func DrawSkipSummary(report model.AnalysisReport, failedRegions []string) {
	fmt.Println(RenderSkipSummary(report, failedRegions))
}

// RenderSkipSummary renders how many subnets were evaluated, how many were
// skipped and why, and which regions could not be searched
func RenderSkipSummary(report model.AnalysisReport, failedRegions []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n Subnets evaluated: %d\n", report.Evaluated)

	if report.SkippedTotal() > 0 {
		tw := table.NewWriter()
		tw.SetTitle("Skipped subnets")
		tw.AppendHeader(table.Row{"Reason", "Count"})
		for _, reason := range model.SkipReasons {
			if count := report.Skipped[reason]; count > 0 {
				tw.AppendRow(table.Row{string(reason), count})
			}
		}
		tw.AppendFooter(table.Row{"Total", report.SkippedTotal()})
		tw.SetStyle(table.StyleRounded)
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
		})
		sb.WriteString(tw.Render())
		sb.WriteString("\n")
	}

	if len(failedRegions) > 0 {
		fmt.Fprintf(&sb, " %s %s\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprintf("Subnet discovery failed in: %s", strings.Join(failedRegions, ", ")))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// DrawActiveAddresses prints the active addresses of a reported subnet
func DrawActiveAddresses(result model.UtilizationResult) {
	fmt.Println(RenderActiveAddresses(result))
}

// RenderActiveAddresses renders every address counted as active in a subnet
func RenderActiveAddresses(result model.UtilizationResult) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("%s (%s) %s", result.SubnetName, result.CIDR, FormatUtilization(result)))
	tw.AppendHeader(table.Row{"IP Address", "Display Name"})

	for _, a := range result.ActiveAddresses {
		label := a.Label
		if a.Reserved {
			label = text.FgHiBlack.Sprint(label)
		}
		address := a.Address
		if address == "" {
			address = "-"
		}
		tw.AppendRow(table.Row{address, label})
	}
	tw.AppendFooter(table.Row{"Active", len(result.ActiveAddresses)})
	tw.SetStyle(table.StyleRounded)

	return tw.Render()
}

// DrawRegionList prints the subscribed regions
func DrawRegionList(regions []model.Region) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🌎 SUBSCRIBED REGIONS"))
	fmt.Println(RenderRegionList(regions))
}

// RenderRegionList renders the subscribed regions with their keys
func RenderRegionList(regions []model.Region) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Region", "Key", "Home"})
	for _, r := range regions {
		home := ""
		if r.Home {
			home = text.FgHiGreen.Sprint("✓")
		}
		tw.AppendRow(table.Row{r.Name, r.Key, home})
	}
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
	})

	return tw.Render()
}

func accountLabel(provider string) string {
	switch provider {
	case model.ProviderOCI:
		return "Tenancy"
	case model.ProviderGCP:
		return "Project"
	case model.ProviderAzure:
		return "Subscription"
	default:
		return "Account ID"
	}
}
