// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/msdijkstra/dijkstra"
	"github.com/katalvlaran/msdijkstra/ewd"
	"github.com/katalvlaran/msdijkstra/report"
)

// errNoInput indicates that a prompt hit end of input without an answer.
var errNoInput = errors.New("msdijkstra: no input")

const (
	promptGraphFile = "Enter the path to the EWD graph file: "
	promptSources   = "Enter the source vertices separated by spaces (e.g. 2 4 5 7): "
)

// session is one invocation: where prompts read and write, where the
// report goes and how it is rendered.
type session struct {
	in     *bufio.Reader
	prompt io.Writer // prompts, kept off out so csv and json stay clean
	out    io.Writer
	log    logrus.FieldLogger
	set    settings
}

// ask prints question and returns the trimmed answer line.
func (s *session) ask(question string) (string, error) {
	if _, err := io.WriteString(s.prompt, question); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errNoInput
		}
	}

	return line, nil
}

// run resolves the graph file and sources from args, prompting for what is
// missing, then computes and writes the shortest-path forest.
//
// args[0] is the graph file; args[1:] are source ids.
func (s *session) run(args []string) error {
	// 1) Graph
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		if path, err = s.ask(promptGraphFile); err != nil {
			return fmt.Errorf("graph file: %w", err)
		}
	}
	g, err := ewd.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	s.log.WithFields(logrus.Fields{
		"file":     path,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("graph loaded")

	// 2) Sources
	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else if text, err = s.ask(promptSources); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	sources, err := ewd.ParseSources(text, g.VertexCount())
	if err != nil {
		return err
	}

	// 3) Search
	res, err := dijkstra.Dijkstra(g, dijkstra.Sources(sources...), dijkstra.WithLogger(s.log))
	if err != nil {
		return err
	}

	// 4) Report
	rows, err := report.Build(g, res)
	if err != nil {
		return err
	}
	if err = report.Write(s.out, s.set.format, rows, s.set.color); err != nil {
		return err
	}
	sum := report.Summarize(rows)
	if s.set.stats {
		report.WriteStats(s.out, res.Stats(), sum)
	}
	s.log.WithFields(logrus.Fields{
		"sources":     sum.Sources,
		"reachable":   sum.Reachable,
		"unreachable": sum.Unreachable,
	}).Info("shortest-path forest written")

	return nil
}
