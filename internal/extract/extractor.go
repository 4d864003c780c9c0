package extract

import "github.com/hyperifyio/gotimeline/internal/deck"

// Extractor turns a parsed presentation into slide records and lines.
// Implementations should be deterministic and avoid side effects.
type Extractor interface {
    Extract(p deck.Presentation) Result
}

// SlideExtractor is the default Extractor backed by FromDeck.
type SlideExtractor struct{}

func (SlideExtractor) Extract(p deck.Presentation) Result {
    return FromDeck(p)
}
