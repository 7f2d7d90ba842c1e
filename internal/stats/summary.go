package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

// Summary captures per-column facts for reporting.
type Summary struct {
	Name       string
	Kind       table.Kind
	NonNull    int
	Missing    int
	MissingPct float64
	// Numeric stats (zero for categorical columns)
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Categorical top values
	TopValues []CategoryCount
	Unique    int
}

type CategoryCount struct {
	Value string
	Count int
}

// Summarize builds a Summary per column, in column order.
func Summarize(t *table.Table) []Summary {
	out := make([]Summary, 0, len(t.Columns()))
	for _, c := range t.Columns() {
		s := Summary{
			Name:       c.Name,
			Kind:       c.Kind,
			Missing:    c.Missing(),
			MissingPct: c.MissingPercent(),
		}
		s.NonNull = c.Len() - s.Missing
		switch c.Kind {
		case table.Numeric:
			cs := DescribeColumn(c)
			s.Min, s.Max, s.Mean, s.Std = cs.Min, cs.Max, cs.Mean, cs.Std
		case table.Categorical:
			cats := map[string]int{}
			for _, v := range c.Strings {
				if v == "" {
					continue
				}
				cats[v]++
			}
			tops := make([]CategoryCount, 0, len(cats))
			for k, v := range cats {
				tops = append(tops, CategoryCount{Value: k, Count: v})
			}
			sort.Slice(tops, func(i, j int) bool {
				if tops[i].Count == tops[j].Count {
					return tops[i].Value < tops[j].Value
				}
				return tops[i].Count > tops[j].Count
			})
			if len(tops) > 8 {
				tops = tops[:8]
			}
			s.TopValues = tops
			s.Unique = len(cats)
		}
		out = append(out, s)
	}
	return out
}

// Markdown renders a compact dataset summary suitable for terminals or docs.
func Markdown(t *table.Table, sums []Summary) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if t.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", t.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", t.Rows()))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(sums)))

	b.WriteString("[SCHEMA]\n")
	for _, s := range sums {
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", safeName(s.Name), s.Kind, s.NonNull, s.MissingPct))
		switch s.Kind {
		case table.Numeric:
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", s.Min, s.Max, s.Mean, s.Std))
		case table.Categorical:
			if len(s.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range s.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if s.Unique > len(s.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", s.Unique))
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
