package connectivity_test

import (
	"errors"
	"net"
	"testing"
	"ulascansenturk/local-weather/internal/connectivity"

	"github.com/stretchr/testify/suite"
)

type CheckerTestSuite struct {
	suite.Suite
}

func listOf(ifaces ...connectivity.Interface) connectivity.Lister {
	return func() ([]connectivity.Interface, error) {
		return ifaces, nil
	}
}

const active = net.FlagUp | net.FlagRunning

func (s *CheckerTestSuite) TestClassify() {
	s.Equal(connectivity.TransportWiFi, connectivity.Classify("wlan0"))
	s.Equal(connectivity.TransportWiFi, connectivity.Classify("wlp3s0"))
	s.Equal(connectivity.TransportCellular, connectivity.Classify("rmnet_data0"))
	s.Equal(connectivity.TransportCellular, connectivity.Classify("wwan0"))
	s.Equal(connectivity.TransportEthernet, connectivity.Classify("eth0"))
	s.Equal(connectivity.TransportEthernet, connectivity.Classify("enp0s31f6"))
	s.Equal(connectivity.TransportEthernet, connectivity.Classify("en0"))
	s.Equal(connectivity.TransportUnknown, connectivity.Classify("docker0"))
	s.Equal(connectivity.TransportUnknown, connectivity.Classify("tun0"))
	s.Equal("wifi", connectivity.TransportWiFi.String())
}

func (s *CheckerTestSuite) TestAvailableOnWiFi() {
	checker := connectivity.NewCheckerWithLister(listOf(
		connectivity.Interface{Name: "lo", Flags: active | net.FlagLoopback, HasAddr: true},
		connectivity.Interface{Name: "wlan0", Flags: active, HasAddr: true},
	), false)

	s.True(checker.IsNetworkAvailable())
}

func (s *CheckerTestSuite) TestAvailableOnCellularAndEthernet() {
	s.True(connectivity.NewCheckerWithLister(listOf(
		connectivity.Interface{Name: "rmnet0", Flags: active, HasAddr: true},
	), false).IsNetworkAvailable())

	s.True(connectivity.NewCheckerWithLister(listOf(
		connectivity.Interface{Name: "eth0", Flags: active, HasAddr: true},
	), false).IsNetworkAvailable())
}

func (s *CheckerTestSuite) TestUnavailable() {
	checker := connectivity.NewCheckerWithLister(listOf(
		connectivity.Interface{Name: "lo", Flags: active | net.FlagLoopback, HasAddr: true},
		connectivity.Interface{Name: "eth0", Flags: net.FlagUp, HasAddr: true},
		connectivity.Interface{Name: "wlan0", Flags: active, HasAddr: false},
		connectivity.Interface{Name: "wwan0", Flags: 0, HasAddr: true},
		connectivity.Interface{Name: "docker0", Flags: active, HasAddr: true},
	), false)

	s.False(checker.IsNetworkAvailable())
}

func (s *CheckerTestSuite) TestLegacyModeAcceptsConnecting() {
	ifaces := listOf(
		connectivity.Interface{Name: "lo", Flags: active | net.FlagLoopback, HasAddr: true},
		connectivity.Interface{Name: "tun0", Flags: net.FlagUp},
	)

	s.False(connectivity.NewCheckerWithLister(ifaces, false).IsNetworkAvailable())
	s.True(connectivity.NewCheckerWithLister(ifaces, true).IsNetworkAvailable())
}

func (s *CheckerTestSuite) TestListerError() {
	checker := connectivity.NewCheckerWithLister(func() ([]connectivity.Interface, error) {
		return nil, errors.New("permission denied")
	}, true)

	s.False(checker.IsNetworkAvailable())
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerTestSuite))
}
