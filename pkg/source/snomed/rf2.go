package snomed

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// Column counts of the RF2 snapshot files.
const (
	conceptColumns      = 5
	descriptionColumns  = 9
	relationshipColumns = 10
)

// maxLine bounds a single RF2 row. Description terms are short, but text
// definitions can run to several kilobytes.
const maxLine = 1 << 20

// eachRow reads the tab-separated rows of r after the header line and calls
// fn with the line number and fields of every row that has exactly columns
// fields. Rows with another field count are skipped through p.
func eachRow(ctx context.Context, r io.Reader, columns int, p *source.Pass, fn func(line int, fields []string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		if line%100000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != columns {
			p.Malformed(lineRecord(line), "%d columns, want %d", len(fields), columns)
			continue
		}
		fn(line, fields)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedRecord, err, "read rf2 line %d", line+1)
	}
	return nil
}

func load(ctx context.Context, name, path string, columns int, opts source.Options, fn func(p *source.Pass, line int, fields []string)) (source.Stats, error) {
	pass := source.Begin(ctx, name, path, opts.Logger)
	f, err := source.Open(path)
	if err != nil {
		return pass.Done(err)
	}
	defer f.Close()

	return pass.Done(eachRow(ctx, f, columns, pass, func(line int, fields []string) {
		fn(pass, line, fields)
	}))
}

func lineRecord(line int) string {
	return "line " + strconv.Itoa(line)
}

// splitSemanticTag splits "Myocardial infarction (disorder)" into
// "Myocardial infarction" and "disorder". Terms without a trailing
// parenthesized tag are returned unchanged with an empty tag.
func splitSemanticTag(term string) (string, string) {
	term = strings.TrimSpace(term)
	if !strings.HasSuffix(term, ")") {
		return term, ""
	}
	open := strings.LastIndex(term, " (")
	if open < 0 {
		return term, ""
	}
	return strings.TrimSpace(term[:open]), term[open+2 : len(term)-1]
}
