// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command esedbdump decodes a single raw record blob against a column
// catalog read from a JSON fixture, printing the resulting value cells.
// It mirrors the teacher's cobra-based dumper (cmd/pedumper.go), adapted
// from a multi-structure PE dump to a record-oriented one.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arukaminado/libesedb"
)

var (
	catalogPath string
	formatRev   uint8
	fileOffset  int64
	asText      bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		fmt.Fprintln(os.Stderr, "JSON parse error:", err)
		return string(buf)
	}
	return pretty.String()
}

type catalogFixture struct {
	Columns []esedb.ColumnCatalogEntry `json:"columns"`
}

func loadCatalog(path string) ([]*esedb.ColumnCatalogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture catalogFixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, err
	}
	catalog := make([]*esedb.ColumnCatalogEntry, len(fixture.Columns))
	for i := range fixture.Columns {
		catalog[i] = &fixture.Columns[i]
	}
	return catalog, nil
}

type cellView struct {
	Column     string `json:"column"`
	Identifier uint16 `json:"identifier"`
	Null       bool   `json:"null"`
	Size       int    `json:"size"`
	Offset     int64  `json:"offset"`
	Text       string `json:"text,omitempty"`
}

func dump(cmd *cobra.Command, args []string) error {
	recordPath := args[0]

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	data, err := os.ReadFile(recordPath)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	io := esedb.IOContext{FormatVersion: esedb.FormatVersion620, FormatRevision: formatRev}
	trace := &esedb.DecodeTrace{}
	record, err := esedb.DecodeRecord(catalog, io, data, fileOffset, trace)
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	views := make([]cellView, 0, len(record.Cells()))
	for _, cell := range record.Cells() {
		v := cellView{
			Column:     cell.Column.Name,
			Identifier: cell.Column.Identifier,
			Null:       cell.IsNull(),
			Size:       len(cell.Data),
			Offset:     cell.Offset,
		}
		if asText && cell.Column.Type == esedb.ColumnTypeLongText && !v.Null {
			if text, err := esedb.DecodeUnicodeText(cell.Data); err == nil {
				v.Text = text
			}
		}
		views = append(views, v)
	}

	out, err := json.Marshal(views)
	if err != nil {
		return err
	}
	fmt.Println(prettyPrint(out))
	for _, anomaly := range trace.Anomalies {
		fmt.Fprintln(os.Stderr, "anomaly:", anomaly)
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "esedbdump",
		Short: "Decodes a raw ESE record blob against a JSON column catalog",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("esedbdump 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <record-file>",
		Short: "Decode a single record blob",
		Args:  cobra.ExactArgs(1),
		RunE:  dump,
	}
	dumpCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "path to a JSON column catalog fixture")
	dumpCmd.Flags().Uint8VarP(&formatRev, "format-revision", "r", 11, "format_revision to decode with")
	dumpCmd.Flags().Int64VarP(&fileOffset, "file-offset", "o", 0, "file offset the record blob starts at")
	dumpCmd.Flags().BoolVarP(&asText, "text", "t", false, "decode LongText tagged columns as UTF-16 text")
	dumpCmd.MarkFlagRequired("catalog")

	rootCmd.AddCommand(versionCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
