package records

import (
	"context"
	"fmt"
	"os"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"gopkg.in/yaml.v3"
)

var _ ports.RecordLoader[model.Post] = (*FixturePostsLoader)(nil)

type (
	// FixturePostsLoader serves posts from a YAML file, read on every load so
	// edits show up without a restart.
	FixturePostsLoader struct {
		path string
	}

	postsFixture struct {
		Posts []model.Post `yaml:"posts"`
	}
)

func NewFixturePostsLoader(path string) *FixturePostsLoader {
	return &FixturePostsLoader{path: path}
}

func (l *FixturePostsLoader) LoadAll(ctx context.Context) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading fixture: %w", model.ErrSourceUnavailable, err)
	}

	return DecodePostsFixture(data)
}

func (l *FixturePostsLoader) Ping(context.Context) error {
	_, err := os.Stat(l.path)

	return err
}

// DecodePostsFixture parses a document of the form `posts: [{id, userId, title, body}]`.
func DecodePostsFixture(data []byte) ([]model.Post, error) {
	var fixture postsFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("decoding posts fixture: %w", err)
	}

	if fixture.Posts == nil {
		return []model.Post{}, nil
	}

	return fixture.Posts, nil
}
