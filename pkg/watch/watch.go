// Package watch monitors a directory of AI system description files and
// classifies each new or changed file, writing a JSON report next to it.
//
// A description file is a plain text or markdown file whose first line is
// treated as "Name | Company" when it contains a pipe, with the remainder as
// the description; otherwise the file name stands in for the system name and
// the whole content is the description.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/fsnotify.v1"

	"github.com/coolbeans/aiact/pkg/pipeline"
)

// Watcher classifies description files as they appear in a directory.
type Watcher struct {
	dir       string
	outputDir string
	pipeline  *pipeline.Pipeline
	watcher   *fsnotify.Watcher
	stopChan  chan struct{}

	// onReport, when set, observes every written report path. Used by
	// tests and the CLI progress output.
	onReport func(sourcePath, reportPath string)
}

// New creates a watcher over dir backed by the given pipeline. Reports are
// written to outputDir, or next to the source files when outputDir is empty.
func New(dir, outputDir string, pl *pipeline.Pipeline) *Watcher {
	return &Watcher{
		dir:       dir,
		outputDir: outputDir,
		pipeline:  pl,
	}
}

// SetOnReport sets a callback invoked after each report is written.
func (w *Watcher) SetOnReport(fn func(sourcePath, reportPath string)) {
	w.onReport = fn
}

// Start begins watching. Existing files are classified once up front, then
// create and write events trigger reclassification. Start returns
// immediately; Stop shuts the watch loop down.
func (w *Watcher) Start() error {
	if w.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	if err := w.classifyExisting(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop()

	if err := watcher.Add(w.dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	return nil
}

// Stop terminates the watch loop.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *Watcher) classifyExisting() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", w.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isDescriptionFile(entry.Name()) {
			continue
		}
		w.classifyFile(filepath.Join(w.dir, entry.Name()))
	}
	return nil
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isDescriptionFile(event.Name) {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Write == fsnotify.Write:
				w.classifyFile(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// classifyFile classifies one description file and writes its report. File
// failures are logged and skipped so one bad file never stops the watch.
func (w *Watcher) classifyFile(path string) {
	request, err := ParseDescriptionFile(path)
	if err != nil {
		log.Printf("skipping %s: %v", path, err)
		return
	}

	rep := w.pipeline.Run(context.Background(), request)

	data, err := rep.ToJSON()
	if err != nil {
		log.Printf("skipping %s: %v", path, err)
		return
	}

	reportPath := w.reportPath(path)
	if err := os.WriteFile(reportPath, data, 0o644); err != nil {
		log.Printf("failed to write report for %s: %v", path, err)
		return
	}

	if w.onReport != nil {
		w.onReport(path, reportPath)
	}
}

func (w *Watcher) reportPath(sourcePath string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	dir := w.outputDir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return filepath.Join(dir, base+".report.json")
}

// ParseDescriptionFile reads a description file into a classification
// request. The first line is split on "|" into name and company when a pipe
// is present; otherwise the file name (minus extension) becomes the system
// name.
func ParseDescriptionFile(path string) (pipeline.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("reading %s: %w", path, err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return pipeline.Request{}, fmt.Errorf("%s is empty", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	company := ""
	description := content

	if firstLine, rest, found := strings.Cut(content, "\n"); found && strings.Contains(firstLine, "|") {
		namePart, companyPart, _ := strings.Cut(firstLine, "|")
		name = strings.TrimSpace(namePart)
		company = strings.TrimSpace(companyPart)
		description = strings.TrimSpace(rest)
	}

	return pipeline.Request{
		Name:        name,
		Company:     company,
		Description: description,
	}, nil
}

func isDescriptionFile(name string) bool {
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".md")
}
