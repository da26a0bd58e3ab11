package daemon

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/distatus/battery"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/power"
	"github.com/ideapad-go/ideapadctl/pkg/profile"
	"github.com/ideapad-go/ideapadctl/pkg/types"
	"github.com/ideapad-go/ideapadctl/pkg/version"
)

func getConservation(c *gin.Context) {
	getFeature(c, manager.BatteryConservation())
}

func setConservation(c *gin.Context) {
	setFeature(c, manager.BatteryConservation())
}

func getRapidCharge(c *gin.Context) {
	getFeature(c, manager.RapidCharge())
}

func setRapidCharge(c *gin.Context) {
	setFeature(c, manager.RapidCharge())
}

func getFeature(c *gin.Context, fc *power.FeatureController) {
	st, err := fc.State()
	if err != nil {
		logrus.Errorf("failed to query %s: %v", fc.Feature(), err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, st.String())
}

func setFeature(c *gin.Context, fc *power.FeatureController) {
	var req types.FeatureRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if !req.Enable {
		if err := fc.Disable(); err != nil {
			logrus.Errorf("failed to disable %s: %v", fc.Feature(), err)
			c.IndentedJSON(http.StatusInternalServerError, err.Error())
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		logrus.Infof("disabled %s", fc.Feature())
		c.IndentedJSON(http.StatusCreated, fmt.Sprintf("disabled %s", fc.Feature()))
		return
	}

	var err error
	if req.Unchecked {
		err = fc.EnableUnchecked()
	} else {
		name := req.Handler
		if name == "" {
			name = conf.DefaultHandler()
		}
		var h power.Handler
		h, err = power.ParseHandler(name)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, err.Error())
			_ = c.AbortWithError(http.StatusBadRequest, err)
			return
		}
		err = fc.EnableWithHandler(h)
	}

	if errors.Is(err, power.ErrConflict) {
		c.IndentedJSON(http.StatusConflict, err.Error())
		_ = c.AbortWithError(http.StatusConflict, err)
		return
	}
	if err != nil {
		logrus.Errorf("failed to enable %s: %v", fc.Feature(), err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("enabled %s", fc.Feature())
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("enabled %s", fc.Feature()))
}

func getPerformance(c *gin.Context) {
	mode, err := manager.SystemPerformance().Mode()
	if err != nil {
		logrus.Errorf("failed to query performance mode: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, mode.String())
}

func setPerformance(c *gin.Context) {
	var req types.PerformanceRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	mode, err := profile.ParseMode(req.Mode)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if err := manager.SystemPerformance().SetMode(mode); err != nil {
		logrus.Errorf("failed to set performance mode: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("set performance mode to %s", mode)
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("set performance mode to %s", mode))
}

func getBatteryInfo(c *gin.Context) {
	batteries, err := battery.GetAll()
	if err != nil {
		logrus.Errorf("getBatteryInfo failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if len(batteries) == 0 {
		logrus.Errorf("no batteries found")
		c.IndentedJSON(http.StatusInternalServerError, "no batteries found")
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no batteries found"))
		return
	}

	// IdeaPads have a single battery.
	c.IndentedJSON(http.StatusOK, batteries[0])
}

func getProfile(c *gin.Context) {
	p := manager.Profile()
	c.IndentedJSON(http.StatusOK, types.ProfileInfo{
		Name:     p.Name,
		Products: p.ProductNames,
	})
}

func getConfig(c *gin.Context) {
	raw := conf.Raw()
	c.IndentedJSON(http.StatusOK, raw)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
