// SPDX-License-Identifier: MIT

package partition

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// String renders p in bar notation, e.g. "|0,1|2|". The empty partition
// renders as "||".
func (p *Partition) String() string {
	if len(p.rep) == 0 {
		return "||"
	}
	var sb strings.Builder
	sb.WriteByte('|')
	for _, block := range p.Blocks() {
		for k, x := range block {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte('|')
	}

	return sb.String()
}

// Parse reads bar notation as produced by String. Elements may be separated
// by commas or spaces. The listed elements must be exactly {0..n-1} for
// some n.
//
// Errors: ErrSyntax, ErrInvalidBlocks.
func Parse(s string) (*Partition, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '|' || s[len(s)-1] != '|' {
		return nil, fmt.Errorf("partition: Parse(%q): missing enclosing bars: %w", s, ErrSyntax)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Zero(0), nil
	}

	var (
		blocks [][]int
		count  int
	)
	hi := -1
	for _, field := range strings.Split(inner, "|") {
		elems := strings.FieldsFunc(field, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(elems) == 0 {
			return nil, fmt.Errorf("partition: Parse(%q): empty block: %w", s, ErrSyntax)
		}
		block := make([]int, 0, len(elems))
		for _, e := range elems {
			x, err := strconv.Atoi(e)
			if err != nil || x < 0 {
				return nil, fmt.Errorf("partition: Parse(%q): bad element %q: %w", s, e, ErrSyntax)
			}
			if x > hi {
				hi = x
			}
			block = append(block, x)
		}
		count += len(block)
		blocks = append(blocks, block)
	}
	// count == hi+1 together with no repeats means the elements are 0..hi
	if count != hi+1 {
		return nil, fmt.Errorf("partition: Parse(%q): elements are not 0..%d: %w", s, hi, ErrInvalidBlocks)
	}

	return FromBlocks(count, blocks)
}

// MarshalJSON encodes p as its list of blocks.
func (p *Partition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Blocks())
}

// UnmarshalJSON decodes a list of blocks covering exactly {0..n-1}.
func (p *Partition) UnmarshalJSON(data []byte) error {
	var blocks [][]int
	if err := json.Unmarshal(data, &blocks); err != nil {
		return fmt.Errorf("partition: UnmarshalJSON: %w", err)
	}
	n := 0
	for _, b := range blocks {
		n += len(b)
	}
	q, err := FromBlocks(n, blocks)
	if err != nil {
		return err
	}
	*p = *q

	return nil
}

// LogValue renders p as a structured slog group.
func (p *Partition) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("n", len(p.rep)),
		slog.Int("blocks", p.blocks),
		slog.String("str", p.String()),
	)
}
