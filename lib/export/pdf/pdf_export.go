package pdfexport

import (
	"bytes"
	"fmt"

	"impar-backend/models"
	analyticsapimodels "impar-backend/models/api/analytics"
	dbmodels "impar-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateResultsReport собирает сводку результатов опроса в PDF.
// Используется встроенный шрифт с транслятором, контент платформы латинский.
func GenerateResultsReport(rec dbmodels.Survey, summary analyticsapimodels.SurveySummary) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResultsReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(rec.Title), "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	if rec.Description != "" {
		pdf.MultiCell(0, 6, tr(rec.Description), "", "L", false)
	}
	pdf.Ln(2)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Total de respostas: %d", summary.TotalResponses)), "", "L", false)
	pdf.Ln(4)

	for idx, question := range summary.Questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", idx+1, question.Text)), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		writeQuestionSummary(pdf, tr, question)
		pdf.Ln(3)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeQuestionSummary(pdf *fpdf.Fpdf, tr func(string) string, question analyticsapimodels.QuestionSummary) {
	switch question.Type {
	case models.QuestionTypeText:
		count := question.TextCount
		if count == 0 {
			count = int64(len(question.TextAnswers))
		}
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Respostas de texto: %d", count)), "", "L", false)
	case models.QuestionTypeRating:
		if question.Rating == nil {
			return
		}
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Média: %.1f (%d respostas)", question.Rating.Average, question.TotalAnswered)), "", "L", false)
		for _, bucket := range question.Rating.Histogram {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("   %d: %d (%.1f%%)", bucket.Value, bucket.Count, bucket.Percentage)), "", "L", false)
		}
	default:
		for _, opt := range question.Options {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("   %s: %d (%.1f%%)", opt.Text, opt.Count, opt.Percentage)), "", "L", false)
		}
	}
}
