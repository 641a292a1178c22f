package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/common"
)

// Document is a parsed almanac.
type Document struct {
	// Seeds is the flat list of numbers from the seeds line.
	Seeds []uint64
	Graph *Graph
}

// SeedSet reads Seeds as (start, length) pairs.
func (d *Document) SeedSet() (SeedSet, error) {
	return SeedSetFromPairs(d.Seeds)
}

type pendingBlock struct {
	line   int
	header string
	step   Step
	rules  []Rule
}

// Parse reads the almanac text format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Rule lines list destination start, source start and length in that order.
func Parse(input string) (*Document, error) {
	var (
		doc   Document
		sets  []*RuleSet
		block *pendingBlock
	)

	flush := func() error {
		if block == nil {
			return nil
		}

		set, err := NewRuleSet(block.step.Source, block.step.Destination, block.rules)
		if err != nil {
			return &SyntaxError{Line: block.line, Token: block.header, Err: err}
		}

		sets = append(sets, set)
		block = nil

		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())

		switch {
		case text == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(text, "seeds:"):
			values, err := parseNumbers(lineNo, strings.TrimPrefix(text, "seeds:"))
			if err != nil {
				return nil, err
			}

			doc.Seeds = append(doc.Seeds, values...)
		case strings.HasSuffix(text, "map:"):
			if err := flush(); err != nil {
				return nil, err
			}

			step, err := parseHeader(text)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Token: text, Err: err}
			}

			block = &pendingBlock{line: lineNo, header: text, step: step}
		default:
			if block == nil {
				return nil, &SyntaxError{Line: lineNo, Token: text, Err: ErrRuleOutsideMap}
			}

			values, err := parseNumbers(lineNo, text)
			if err != nil {
				return nil, err
			}

			if len(values) != 3 {
				return nil, &SyntaxError{Line: lineNo, Token: text, Err: ErrMalformedRule}
			}

			block.rules = append(block.rules, Rule{
				DestinationStart: values[0],
				SourceStart:      values[1],
				Length:           values[2],
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	graph, err := NewGraph(sets...)
	if err != nil {
		return nil, err
	}

	doc.Graph = graph

	return &doc, nil
}

// parseHeader reads "<source>-to-<destination> map:".
func parseHeader(text string) (Step, error) {
	name := strings.TrimSpace(strings.TrimSuffix(text, "map:"))

	source, destination, ok := strings.Cut(name, "-to-")
	if !ok || source == "" || destination == "" || strings.ContainsAny(name, " \t") {
		return Step{}, ErrMalformedHeader
	}

	return Step{Source: Category(source), Destination: Category(destination)}, nil
}

func parseNumbers(lineNo int, text string) ([]uint64, error) {
	values, err := common.ParseUints(text)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return nil, &SyntaxError{Line: lineNo, Token: numErr.Num, Err: numErr.Err}
		}

		return nil, &SyntaxError{Line: lineNo, Err: err}
	}

	return values, nil
}
