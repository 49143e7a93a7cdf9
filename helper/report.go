package helper

import (
	"errors"
	"log"
	"sort"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/utils"

	"github.com/shopspring/decimal"
)

// BuildReport aggregates the approved orders of one date. It only reads.
func BuildReport(orders []model.Order, date string) model.DailyReport {
	report := model.DailyReport{
		Date:      date,
		Items:     []model.ItemCount{},
		Total:     decimal.Zero,
		ByPayment: []model.PaymentSummary{},
	}

	known := CurrentCatalog().ItemNames()
	itemIndex := map[string]int{}
	payIndex := map[string]int{}
	for _, o := range orders {
		if o.Status != constants.STATUS_APPROVED || !o.HasDate || o.EventDate() != date {
			continue
		}
		report.Orders++
		report.Total = report.Total.Add(o.Total)

		i, ok := payIndex[o.PaymentMethod]
		if !ok {
			i = len(report.ByPayment)
			payIndex[o.PaymentMethod] = i
			report.ByPayment = append(report.ByPayment, model.PaymentSummary{Method: o.PaymentMethod, Total: decimal.Zero})
		}
		report.ByPayment[i].Total = report.ByPayment[i].Total.Add(o.Total)
		report.ByPayment[i].Count++

		lines, errs := utils.DecodeItems(o.Items, known...)
		for _, err := range errs {
			w := model.ReportWarning{OrderID: o.ID, Token: err.Error()}
			var te utils.TokenError
			if errors.As(err, &te) {
				w.Token = te.Token
			}
			log.Printf("Could not parse item %q of order #%s", w.Token, o.ID)
			report.Warnings = append(report.Warnings, w)
		}
		for _, line := range lines {
			j, ok := itemIndex[line.Name]
			if !ok {
				j = len(report.Items)
				itemIndex[line.Name] = j
				report.Items = append(report.Items, model.ItemCount{Name: line.Name})
			}
			report.Items[j].Units += line.Qty
		}
	}

	sort.SliceStable(report.ByPayment, func(i, j int) bool {
		return report.ByPayment[i].Method < report.ByPayment[j].Method
	})
	return report
}
