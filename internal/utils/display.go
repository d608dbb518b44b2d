// Package utils provides utility functions for the batting-report
package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/myusername/batting-report/pkg/models"
)

// Output formats understood by DisplayBatsmen
const (
	FormatDebug = "debug"
	FormatDump  = "dump"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Formats lists every supported output format
var Formats = []string{FormatDebug, FormatDump, FormatTable, FormatCSV}

// DisplayBatsmen writes batsmen to w in the requested format
func DisplayBatsmen(w io.Writer, batsmen []models.Batsman, format string) error {
	switch format {
	case FormatDebug, "":
		_, err := fmt.Fprintf(w, "%+v\n", batsmen)
		return err
	case FormatDump:
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
		cfg.Fdump(w, batsmen)
		return nil
	case FormatTable:
		return displayTable(w, batsmen)
	case FormatCSV:
		return WriteBatsmenCSV(w, batsmen)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func displayTable(w io.Writer, batsmen []models.Batsman) error {
	if _, err := fmt.Fprintf(w, "%-4s | %-8s | %-20s | %8s | %7s\n", "Rank", "Initials", "Surname", "Runs", "Average"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-4s | %-8s | %-20s | %8s | %7s\n",
		strings.Repeat("-", 4), strings.Repeat("-", 8), strings.Repeat("-", 20),
		strings.Repeat("-", 8), strings.Repeat("-", 7)); err != nil {
		return err
	}

	for i, b := range batsmen {
		if _, err := fmt.Fprintf(w, "%4d | %-8s | %-20s | %8d | %7.0f\n",
			i+1, b.Initials, b.Surname, b.Runs, b.Average); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatsmenCSV writes a header and one row per batsman
func WriteBatsmenCSV(w io.Writer, batsmen []models.Batsman) error {
	_, err := fmt.Fprintf(w, "Initials,Surname,Runs,Average\n")
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, b := range batsmen {
		_, err = fmt.Fprintf(w, "%s,%s,%d,%.0f\n", b.Initials, b.Surname, b.Runs, b.Average)
		if err != nil {
			return fmt.Errorf("failed to write batsman data: %w", err)
		}
	}

	return nil
}

// SaveBatsmenToCSV saves the batsmen to a CSV file
func SaveBatsmenToCSV(batsmen []models.Batsman, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteBatsmenCSV(f, batsmen); err != nil {
		return err
	}
	return f.Close()
}
