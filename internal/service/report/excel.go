// Package report builds the daily output sheet: one row per welder with
// his article quantities, norm hours, applied adjustments and the
// overtime bank. Shapewise the same table the shop used to fill by hand.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type Accounting interface {
	Snapshot() domain.AppState
	ResolveTime(article string, quantity float64) float64
}

type Service struct {
	acc Accounting
}

func NewService(acc Accounting) *Service {
	return &Service{acc: acc}
}

type row struct {
	name         string
	qtyByArticle map[string]float64
	workTime     float64
	adjustment   float64
	overtimeBank float64
}

func (s *Service) DayReport(ctx context.Context, date string) ([]byte, error) {
	const op = "service.report.DayReport"

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.Invalid("date", "ожидается дата в формате ГГГГ-ММ-ДД")
	}

	snap := s.acc.Snapshot()

	rows := make([]row, len(snap.Welders))
	g, _ := errgroup.WithContext(ctx)
	for i, w := range snap.Welders {
		i, w := i, w
		g.Go(func() error {
			rows[i] = s.buildRow(w, date)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Колонки артикулов — в порядке первого появления в записях за день.
	var articles []string
	seen := map[string]bool{}
	for _, w := range snap.Welders {
		for _, rec := range w.WorkRecords {
			if rec.Date == date && !seen[rec.Article] {
				seen[rec.Article] = true
				articles = append(articles, rec.Article)
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Выработка"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := append([]string{"Сварщик"}, articles...)
	headers = append(headers, "Н/час", "Корректировка", "Итого", "Банк переработки")
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for ri, r := range rows {
		rowNum := ri + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		f.SetCellValue(sheet, cell, r.name)

		for ai, art := range articles {
			if qty, ok := r.qtyByArticle[art]; ok {
				cell, _ := excelize.CoordinatesToCellName(ai+2, rowNum)
				f.SetCellValue(sheet, cell, qty)
			}
		}

		base := len(articles) + 2
		for off, v := range []float64{r.workTime, r.adjustment, r.workTime + r.adjustment, r.overtimeBank} {
			cell, _ := excelize.CoordinatesToCellName(base+off, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: "Выработка за " + date}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func (s *Service) buildRow(w domain.Welder, date string) row {
	r := row{
		name:         w.Name,
		qtyByArticle: map[string]float64{},
		adjustment:   w.TimeAdjustments[date],
		overtimeBank: w.Overtime,
	}
	for _, rec := range w.WorkRecords {
		if rec.Date != date {
			continue
		}
		r.qtyByArticle[rec.Article] += rec.Quantity
		r.workTime += s.acc.ResolveTime(rec.Article, rec.Quantity)
	}
	return r
}
