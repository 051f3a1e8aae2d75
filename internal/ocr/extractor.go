package ocr

import (
	"context"
	"image"
	"log/slog"
	"sort"

	"journeylens/internal/logging"
	"journeylens/internal/textutil"
)

// Extractor turns a grayscale frame into normalized text plus the UI
// vocabulary terms found in it.
type Extractor struct {
	engine   Engine
	matchers []termMatcher
	logger   *slog.Logger
}

// NewExtractor builds an extractor around the provided engine and vocabulary.
func NewExtractor(engine Engine, vocab Vocabulary, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{
		engine:   engine,
		matchers: vocab.compile(),
		logger:   logger,
	}
}

// Extract runs OCR on the frame and derives UI elements from the recognized
// text. OCR failures degrade to empty results for the frame; they never abort
// the run.
func (e *Extractor) Extract(ctx context.Context, frame *image.Gray) (string, []string) {
	binarized := Binarize(frame)
	raw, err := e.engine.Recognize(ctx, binarized)
	if err != nil {
		e.logger.Warn("ocr degraded for frame", logging.Error(err))
		return "", nil
	}
	text := textutil.NormalizeWhitespace(raw)
	return text, e.Elements(text)
}

// Elements returns the de-duplicated, sorted vocabulary terms present in
// text, matched case-insensitively as whole words and reported under their
// canonical spelling.
func (e *Extractor) Elements(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var elements []string
	for _, m := range e.matchers {
		if m.pattern.MatchString(text) {
			if _, ok := seen[m.term]; ok {
				continue
			}
			seen[m.term] = struct{}{}
			elements = append(elements, m.term)
		}
	}
	sort.Strings(elements)
	return elements
}
