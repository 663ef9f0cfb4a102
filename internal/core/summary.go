package core

// Chart holds parallel label/value arrays for the bar chart collaborator.
// One bar per payment record in iteration order, not per student.
type Chart struct {
	Labels []string
	Values []float64
}

// Summary is the aggregate view over the full ledger.
type Summary struct {
	Total Money
	Chart Chart
}

// ReceiptGroup is the input to the receipt formatter: the filtered rows,
// their total, and the distinct month labels in first-occurrence order.
type ReceiptGroup struct {
	Rows   []Payment
	Total  Money
	Months []string
}

// Summarize computes the running total and chart series over the full
// ordered payment sequence. Summation stays in cents; rounding to two
// decimals happens only at render time.
func Summarize(payments []Payment) Summary {
	s := Summary{
		Chart: Chart{
			Labels: make([]string, 0, len(payments)),
			Values: make([]float64, 0, len(payments)),
		},
	}
	for _, p := range payments {
		s.Total.Cents += p.Amount.Cents
		s.Chart.Labels = append(s.Chart.Labels, p.Student)
		s.Chart.Values = append(s.Chart.Values, p.Amount.Units())
	}
	return s
}

// GroupForReceipt filters the ledger to one student when filter is non-empty,
// sums the surviving amounts, and collects the distinct calendar months.
// Month labels are full names for the unfiltered receipt and abbreviated for
// a single student's receipt.
func GroupForReceipt(payments []Payment, filterStudent string) ReceiptGroup {
	var g ReceiptGroup
	seen := map[string]struct{}{}
	for _, p := range payments {
		if filterStudent != "" && p.Student != filterStudent {
			continue
		}
		g.Rows = append(g.Rows, p)
		g.Total.Cents += p.Amount.Cents

		label := p.Date.MonthName()
		if filterStudent != "" {
			label = p.Date.MonthAbbr()
		}
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			g.Months = append(g.Months, label)
		}
	}
	return g
}
