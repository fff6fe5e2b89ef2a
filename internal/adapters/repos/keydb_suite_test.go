package repos_test

import (
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/infrastructure"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/suite"
)

// keydbSuite starts a miniredis server and a KeydbClient for every test.
type keydbSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	keydbClient *infrastructure.KeydbClient
}

func (s *keydbSuite) SetupTest() {
	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.keydbClient = infrastructure.NewKeyDBClient(config.Cache{
		Address:       s.miniRedis.Addr(),
		PoolSize:      5,
		DialTimeout:   time.Second,
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		DefaultExpiry: time.Hour,
	}, logger.NewTestLogger())
}

func (s *keydbSuite) TearDownTest() {
	if s.keydbClient != nil {
		s.Require().NoError(s.keydbClient.Close())
	}

	if s.miniRedis != nil {
		s.miniRedis.Close()
	}
}
