package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/ideapad-go/ideapadctl/pkg/config"
	"github.com/ideapad-go/ideapadctl/pkg/powerinfo"
	"github.com/ideapad-go/ideapadctl/pkg/types"
)

func (c *Client) setFeature(path string, req types.FeatureRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return c.Put(path, string(payload))
}

// GetConservation returns the battery conservation state: "enabled",
// "disabled" or "unknown".
func (c *Client) GetConservation() (string, error) {
	ret, err := c.Get("/conservation")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get battery conservation state")
	}
	return parseStringResponse(ret)
}

// SetConservation enables or disables battery conservation. handler names
// the conflict policy ("switch", "ignore", "error" or "" for the daemon's
// default); unchecked bypasses conflict resolution.
func (c *Client) SetConservation(enable bool, handler string, unchecked bool) (string, error) {
	return c.setFeature("/conservation", types.FeatureRequest{
		Enable:    enable,
		Handler:   handler,
		Unchecked: unchecked,
	})
}

// GetRapidCharge returns the rapid charge state.
func (c *Client) GetRapidCharge() (string, error) {
	ret, err := c.Get("/rapid-charge")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get rapid charge state")
	}
	return parseStringResponse(ret)
}

// SetRapidCharge enables or disables rapid charge. See SetConservation.
func (c *Client) SetRapidCharge(enable bool, handler string, unchecked bool) (string, error) {
	return c.setFeature("/rapid-charge", types.FeatureRequest{
		Enable:    enable,
		Handler:   handler,
		Unchecked: unchecked,
	})
}

// GetPerformance returns the current performance preset.
func (c *Client) GetPerformance() (string, error) {
	ret, err := c.Get("/performance")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get performance mode")
	}
	return parseStringResponse(ret)
}

// SetPerformance sets the performance preset.
func (c *Client) SetPerformance(mode string) (string, error) {
	payload, err := json.Marshal(types.PerformanceRequest{Mode: mode})
	if err != nil {
		return "", err
	}
	return c.Put("/performance", string(payload))
}

// GetBatteryInfo returns the OS view of the battery.
func (c *Client) GetBatteryInfo() (*powerinfo.Battery, error) {
	ret, err := c.Get("/battery-info")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get battery info")
	}

	var bat powerinfo.Battery
	if err := json.Unmarshal([]byte(ret), &bat); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery info")
	}

	return &bat, nil
}

// GetProfile returns the daemon's active hardware profile.
func (c *Client) GetProfile() (*types.ProfileInfo, error) {
	ret, err := c.Get("/profile")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get profile")
	}

	var p types.ProfileInfo
	if err := json.Unmarshal([]byte(ret), &p); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal profile")
	}

	return &p, nil
}

// GetConfig returns the daemon's config.
func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

// GetVersion returns the daemon's version.
func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	return parseStringResponse(ret)
}

// parseStringResponse unquotes a JSON string body.
func parseStringResponse(resp string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(resp), &s); err != nil {
		return "", pkgerrors.Errorf("unexpected response: %s", resp)
	}
	return s, nil
}
