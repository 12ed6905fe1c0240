// Package resolve looks up LinkedIn profile identifiers for extracted name
// records via two independent search backends and reconciles the results.
package resolve

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/pkg/brave"
	"github.com/sells-group/prospect-cli/pkg/brightdata"
)

const (
	defaultSearchCount  = 5
	defaultOrganicCount = 10
	defaultDelay        = 5 * time.Second
)

// Resolver enriches interchange rows with LinkedIn profile identifiers. The
// scrape proxy is optional; without it resolution runs keyword-only.
type Resolver struct {
	search       brave.Client
	proxy        brightdata.Client
	searchCount  int
	organicCount int
	limiter      *rate.Limiter
}

// Option configures the resolver.
type Option func(*Resolver)

// WithProxy enables the scrape-backed second search source.
func WithProxy(proxy brightdata.Client) Option {
	return func(r *Resolver) {
		r.proxy = proxy
	}
}

// WithSearchCount sets the keyword-search result count.
func WithSearchCount(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.searchCount = n
		}
	}
}

// WithOrganicCount sets the scrape-search result count.
func WithOrganicCount(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.organicCount = n
		}
	}
}

// WithDelay sets the fixed inter-row delay.
func WithDelay(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// New creates a Resolver over the keyword-search backend.
func New(search brave.Client, opts ...Option) *Resolver {
	r := &Resolver{
		search:       search,
		searchCount:  defaultSearchCount,
		organicCount: defaultOrganicCount,
		limiter:      rate.NewLimiter(rate.Every(defaultDelay), 1),
	}
	for _, o := range opts {
		o(r)
	}
	// Drain the initial burst token so the first inter-row wait spans the
	// full interval.
	r.limiter.Allow()
	return r
}

// Resolve enriches a single row. Lookup failures are logged and leave the
// corresponding candidate list empty; the row always receives a fresh
// database_id. No cross-row state is consulted.
func (r *Resolver) Resolve(ctx context.Context, p model.Prospect) model.Prospect {
	log := zap.L().With(
		zap.String("name", p.FullName()),
		zap.String("organization", p.Organization),
	)

	profiles1 := r.keywordProfiles(ctx, p, log)

	var profiles2 []string
	if r.proxy != nil {
		profiles2 = r.organicProfiles(ctx, p, log)
	}

	p.DatabaseID = uuid.NewString()
	p.LinkedInID = nil
	p.OtherMatches = nil

	id, others := Reconcile(profiles1, profiles2)
	if id != "" {
		p.LinkedInID = model.StringPtr(id)
	}
	if len(others) > 0 {
		p.OtherMatches = model.StringPtr(strings.Join(others, ", "))
	}

	log.Info("resolve: row complete",
		zap.Int("keyword_candidates", len(profiles1)),
		zap.Int("organic_candidates", len(profiles2)),
		zap.String("linkedin_id", id),
	)

	return p
}

// ResolveAll enriches every row in place, strictly sequentially, pausing the
// fixed delay between rows. Per-row failures never abort the pass; only
// context cancellation does.
func (r *Resolver) ResolveAll(ctx context.Context, rows []model.Prospect) error {
	for i := range rows {
		rows[i] = r.Resolve(ctx, rows[i])

		if i < len(rows)-1 {
			if err := r.limiter.Wait(ctx); err != nil {
				return eris.Wrap(err, "resolve: wait between rows")
			}
		}
	}
	return nil
}

// keywordProfiles runs the keyword search and collects profile slugs in
// result order.
func (r *Resolver) keywordProfiles(ctx context.Context, p model.Prospect, log *zap.Logger) []string {
	resp, err := r.search.WebSearch(ctx, KeywordQuery(p), r.searchCount)
	if err != nil {
		log.Warn("resolve: keyword search failed", zap.Error(err))
		return nil
	}

	var slugs []string
	for _, res := range resp.Web.Results {
		if slug := MatchKeywordProfile(res.URL); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

// organicProfiles fetches the search-engine page through the scrape proxy and
// collects profile slugs from its organic results in order.
func (r *Resolver) organicProfiles(ctx context.Context, p model.Prospect, log *zap.Logger) []string {
	raw, err := r.proxy.Fetch(ctx, SearchEngineURL(p, r.organicCount))
	if err != nil {
		log.Warn("resolve: scrape search failed", zap.Error(err))
		return nil
	}

	var payload struct {
		Organic []struct {
			Link string `json:"link"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Warn("resolve: scrape response is not valid JSON", zap.Error(err))
		return nil
	}

	var slugs []string
	for _, res := range payload.Organic {
		if slug := MatchOrganicProfile(res.Link); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
