// Command closing prints the closing report of one event date as tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	_ "time/tzdata"

	"quentinhas/config"
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/olekukonko/tablewriter"
)

func main() {
	date := flag.String("date", "", "event date (YYYY-MM-DD), defaults to today")
	send := flag.Bool("email", false, "also mail the report to REPORT_EMAIL")
	flag.Parse()

	if *date == "" {
		*date = helper.Now().In(helper.Location()).Format(utils.ISODate)
	}

	database.ConnectDB(helper.Location())
	ctx := context.Background()

	report, warnings, err := helper.DailyReport(ctx, database.Orders, *date)
	if err != nil {
		log.Fatalf("Closing report for %s: %v", *date, err)
	}
	for _, w := range warnings {
		log.Printf("Sheet warning: %s", w)
	}

	printReport(report)

	if *send {
		to := config.Config("REPORT_EMAIL")
		if to == "" || !utils.SMTPConfigured() {
			log.Fatal("REPORT_EMAIL and SMTP settings are required with -email")
		}
		if err := utils.SendClosingReportEmail(to, report); err != nil {
			log.Fatalf("Send closing report: %v", err)
		}
	}
}

func printReport(r model.DailyReport) {
	fmt.Printf("Fechamento de Caixa - %s\n", utils.ISOToBR(r.Date))
	fmt.Printf("Pedidos aprovados: %d\n\n", r.Orders)

	items := tablewriter.NewWriter(os.Stdout)
	items.Header("Item", "Unidades")
	for _, it := range r.Items {
		items.Append([]string{it.Name, strconv.Itoa(it.Units)})
	}
	items.Render()
	fmt.Println()

	payments := tablewriter.NewWriter(os.Stdout)
	payments.Header("Pagamento", "Pedidos", "Total (R$)")
	for _, p := range r.ByPayment {
		payments.Append([]string{p.Method, strconv.Itoa(p.Count), p.Total.StringFixed(2)})
	}
	payments.Footer("Total", strconv.Itoa(r.Orders), r.Total.StringFixed(2))
	payments.Render()

	if len(r.Warnings) > 0 {
		fmt.Println("\nAvisos:")
		for _, w := range r.Warnings {
			fmt.Printf("  pedido #%s: %q\n", w.OrderID, w.Token)
		}
	}
}
