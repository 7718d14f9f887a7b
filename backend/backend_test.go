package backend

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phlak/clouddrop"
	"github.com/phlak/clouddrop/mocks"
)

/**********************************
 ************TESTS*****************
 **********************************/

type testSuite struct {
	suite.Suite
}

func (s *testSuite) mockFactory(p clouddrop.Provider) Factory {
	return func(clouddrop.Config) (clouddrop.Provider, error) {
		return p, nil
	}
}

func (s *testSuite) TestRegistry() {
	r := NewRegistry()

	m1 := mocks.NewProvider(s.T())
	r.Register("mock", s.mockFactory(m1))

	// register a new provider
	m2 := mocks.NewProvider(s.T())
	r.Register("new mock", s.mockFactory(m2))

	// register another provider
	m3 := mocks.NewProvider(s.T())
	r.Register("newest mock", s.mockFactory(m3))

	// init provider
	p, err := r.Init("new mock", clouddrop.Config{})
	s.Require().NoError(err)
	s.IsType((*mocks.Provider)(nil), p, "type is mocks.Provider")
	s.Same(m2, p)

	// check all registered names, sorted
	s.Equal([]string{"mock", "new mock", "newest mock"}, r.Registered())

	// unregister a provider
	r.Unregister("newest mock")
	s.Len(r.Registered(), 2, "found 2 providers")

	_, err = r.Init("newest mock", clouddrop.Config{})
	s.ErrorIs(err, clouddrop.ErrUnknownProvider)
}

func (s *testSuite) TestInitUnknownProvider() {
	r := NewRegistry()

	p, err := r.Init("not_a_provider", clouddrop.Config{AccessToken: "not_a_real_token"})
	s.Nil(p)
	s.Require().Error(err)
	s.ErrorIs(err, clouddrop.ErrUnknownProvider)

	var unknown *clouddrop.UnknownProviderError
	s.Require().ErrorAs(err, &unknown)
	s.Equal("not_a_provider", unknown.Name)
}

func (s *testSuite) TestInitPassesConfigThrough() {
	r := NewRegistry()
	cfg := clouddrop.Config{AccessToken: "not_a_real_token"}

	var got clouddrop.Config
	r.Register("capture", func(c clouddrop.Config) (clouddrop.Provider, error) {
		got = c
		return mocks.NewProvider(s.T()), nil
	})

	_, err := r.Init("capture", cfg)
	s.Require().NoError(err)
	s.Equal(cfg, got)
}

func (s *testSuite) TestInitFactoryError() {
	r := NewRegistry()
	factoryErr := errors.New("bad config")
	r.Register("broken", func(clouddrop.Config) (clouddrop.Provider, error) {
		return nil, factoryErr
	})

	p, err := r.Init("broken", clouddrop.Config{})
	s.Nil(p)
	s.ErrorIs(err, factoryErr)
	s.NotErrorIs(err, clouddrop.ErrUnknownProvider)
}

func (s *testSuite) TestConcurrentAccess() {
	r := NewRegistry()
	m := mocks.NewProvider(s.T())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("mock", s.mockFactory(m))
		}()
		go func() {
			defer wg.Done()
			_ = r.Registered()
		}()
	}
	wg.Wait()

	s.Equal([]string{"mock"}, r.Registered())
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(testSuite))
}
