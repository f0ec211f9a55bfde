// Package classifier assigns triage categories to inbound notification
// messages and extracts the residence unit and package tracking token from
// their text. Classification is pure; a Pipeline may additionally memoize
// results per message id.
package classifier

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// Result is the outcome of classifying one message.
type Result struct {
	Category    domain.MessageCategory
	Subcategory domain.MessageSubcategory
	Rule        string
}

// Classifier evaluates an ordered rule chain; the first match wins.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier. With no rules it uses DefaultRules.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the category of a message. It always yields exactly one
// result: when no rule matches, routine/other is returned.
func (c *Classifier) Classify(subject, body string) Result {
	in := Input{
		Subject: domain.NormalizeText(subject),
		Body:    domain.NormalizeText(body),
	}
	for _, r := range c.rules {
		if r.Match(in) {
			return Result{Category: r.Category, Subcategory: r.Subcategory, Rule: r.Name}
		}
	}
	return Result{Category: fallback.Category, Subcategory: fallback.Subcategory, Rule: fallback.Name}
}

var defaultClassifier = New()

// Classify classifies with the default rule chain.
func Classify(subject, body string) (domain.MessageCategory, domain.MessageSubcategory) {
	r := defaultClassifier.Classify(subject, body)
	return r.Category, r.Subcategory
}

// Pipeline turns raw messages into classified messages.
type Pipeline struct {
	classifier *Classifier
	units      *UnitExtractor
	results    *cache.Cache
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithResultCache memoizes classifications by message id for ttl. Stored
// messages are never edited, so the id stands for the text. A non-positive
// ttl disables the cache.
func WithResultCache(ttl time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if ttl > 0 {
			p.results = cache.New(ttl, 2*ttl)
		}
	}
}

// NewPipeline creates a Pipeline. A nil classifier uses the default rules.
func NewPipeline(c *Classifier, units *UnitExtractor, opts ...PipelineOption) *Pipeline {
	if c == nil {
		c = defaultClassifier
	}
	p := &Pipeline{classifier: c, units: units}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ClassifyMessage derives category, unit and tracking token for one message.
func (p *Pipeline) ClassifyMessage(m domain.Message) domain.ClassifiedMessage {
	if p.results == nil || m.ID == uuid.Nil {
		return p.classify(m)
	}

	key := m.ID.String()
	if cached, ok := p.results.Get(key); ok {
		cm := cached.(domain.ClassifiedMessage)
		cm.Message = m
		return cm
	}
	cm := p.classify(m)
	p.results.SetDefault(key, cm)
	return cm
}

func (p *Pipeline) classify(m domain.Message) domain.ClassifiedMessage {
	res := p.classifier.Classify(m.Subject, m.BodySnippet)

	unit := domain.UnitUnknown
	if p.units != nil {
		unit = p.units.Extract(m.Subject, m.BodySnippet)
	}

	return domain.ClassifiedMessage{
		Message:       m,
		Category:      res.Category,
		Subcategory:   res.Subcategory,
		Unit:          unit,
		PackageNumber: ExtractPackageNumber(m.BodySnippet),
	}
}

// ClassifyAll classifies messages, preserving order.
func (p *Pipeline) ClassifyAll(msgs []domain.Message) []domain.ClassifiedMessage {
	out := make([]domain.ClassifiedMessage, len(msgs))
	for i, m := range msgs {
		out[i] = p.ClassifyMessage(m)
	}
	return out
}
