package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-intake/internal/cv"
	"cv-intake/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a PDF or DOCX resume and print the profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseValidate     bool
	parseOCR          bool
	parsePhonePattern string
)

func init() {
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Check the output against the parsed profile JSON schema")
	parseCmd.Flags().BoolVar(&parseOCR, "ocr", false, "Fall back to OCR for scanned PDFs (needs pdftoppm and tesseract)")
	parseCmd.Flags().StringVar(&parsePhonePattern, "phone-pattern", "", "Phone number regexp (default: Indian mobile numbers)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	phone, err := cv.NewPhoneRule(parsePhonePattern)
	if err != nil {
		return fmt.Errorf("invalid --phone-pattern: %w", err)
	}

	var ocr cv.ImageOCR
	if parseOCR {
		ocr = cv.NewPopplerOCR(0, 0)
	}
	parser := cv.NewParser(cv.NewExtractor(ocr), nil, phone)

	profile, err := parser.ParseFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if parseValidate {
		if err := schemas.Validate(profile); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "profile matches schema")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
