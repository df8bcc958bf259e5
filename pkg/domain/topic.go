package domain

import "fmt"

// TopicID identifies a demo topic. It doubles as the URL segment used by the preview server.
type TopicID string

const (
	TopicBESS      TopicID = "bess"
	TopicVisionNav TopicID = "vision-nav"
)

// Topic describes one portfolio demo the tool can synthesize frames for.
type Topic struct {
	ID       TopicID `json:"id" yaml:"id" mapstructure:"id"`
	Name     string  `json:"name" yaml:"name" mapstructure:"name"`
	Headline string  `json:"headline" yaml:"headline" mapstructure:"headline"`
	Video    string  `json:"video" yaml:"video" mapstructure:"video"`
	Emoji    string  `json:"-" yaml:"-" mapstructure:"-"`
}

// Topics lists the synthesized topics in generation order.
var Topics = []Topic{
	{
		ID:       TopicBESS,
		Name:     "BESS Optimizer",
		Headline: "MILP BESS Optimizer - Real-Time Demo",
		Video:    "bess-optimizer-demo.mp4",
		Emoji:    "📊",
	},
	{
		ID:       TopicVisionNav,
		Name:     "Vision Navigation",
		Headline: "Vision Transformer Navigation - GPS-Denied Environment",
		Video:    "vision-nav-demo.mp4",
		Emoji:    "🤖",
	},
}

// VideoTargets are the filenames the portfolio site looks for under public/videos/.
// Only the first two have synthesized dashboards; the others are recorded by hand.
var VideoTargets = []string{
	"bess-optimizer-demo.mp4",
	"vision-nav-demo.mp4",
	"airspace-pricing-demo.mp4",
	"marine-bess-demo.mp4",
}

// LookupTopic returns the topic registered under id.
func LookupTopic(id TopicID) (Topic, error) {
	for _, t := range Topics {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
}
