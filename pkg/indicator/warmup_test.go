package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WarmupTestSuite struct {
	suite.Suite
}

func TestWarmupSuite(t *testing.T) {
	suite.Run(t, new(WarmupTestSuite))
}

func (suite *WarmupTestSuite) TestTicksUntilRequired() {
	w := newWarmup(3)
	suite.Equal(WarmingUp, w.state)
	suite.Equal(WarmingUp, w.tick())
	suite.Equal(WarmingUp, w.tick())
	suite.Equal(Ready, w.tick())
	suite.Equal(Ready, w.tick())
	suite.Equal(3, w.count)
}

func (suite *WarmupTestSuite) TestSingleSampleClock() {
	w := newWarmup(1)
	suite.Equal(Ready, w.tick())
}

func (suite *WarmupTestSuite) TestReset() {
	w := newWarmup(2)
	w.tick()
	w.tick()
	w.reset()
	suite.Equal(WarmingUp, w.state)
	suite.Equal(0, w.count)
	suite.Equal(WarmingUp, w.tick())
}

func (suite *WarmupTestSuite) TestString() {
	suite.Equal("warming_up", WarmingUp.String())
	suite.Equal("ready", Ready.String())
	suite.Equal("unknown", WarmupState(7).String())
}
