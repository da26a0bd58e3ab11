// Package daemon serves the feature controls over a unix-socket HTTP API.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/config"
	"github.com/ideapad-go/ideapadctl/pkg/power"
	"github.com/ideapad-go/ideapadctl/pkg/profile"
)

var (
	manager *power.Manager
	conf    *config.File
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/conservation", getConservation)
	router.PUT("/conservation", setConservation)
	router.GET("/rapid-charge", getRapidCharge)
	router.PUT("/rapid-charge", setRapidCharge)
	router.GET("/performance", getPerformance)
	router.PUT("/performance", setPerformance)
	router.GET("/battery-info", getBatteryInfo)
	router.GET("/profile", getProfile)
	router.GET("/config", getConfig)
	router.GET("/version", getVersion)

	return router
}

func pickProfile() (*profile.Profile, error) {
	if name := conf.ProfileOverride(); name != "" {
		for _, p := range profile.BuiltIn {
			if p.Name == name {
				logrus.Warnf("profile auto-detection bypassed, forcing %s", name)
				return p, nil
			}
		}
		logrus.Errorf("profileOverride %q names no built-in profile, falling back to auto-detection", name)
	}
	return profile.Detect(profile.ProductName)
}

// Run starts the daemon and blocks until SIGINT/SIGTERM.
func Run(configPath, unixSocketPath string, allowNonRoot bool) error {
	router := setupRoutes()

	var err error
	conf, err = config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := conf.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.Infof("config reloaded")
		}
	}()

	p, err := pickProfile()
	if err != nil {
		logrus.Fatalf("no usable profile: %v", err)
	}

	manager, err = power.InitWithProfile(p)
	if err != nil {
		logrus.Fatal(err)
	}

	srv := &http.Server{
		Handler: router,
	}

	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	if conf.AllowNonRootAccess() || allowNonRoot {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", unixSocketPath)
		if err := os.Chmod(unixSocketPath, 0o777); err != nil {
			logrus.Fatal(err)
		}
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	if conf.DisableRapidChargeOnExit() {
		if err := manager.RapidCharge().Disable(); err != nil {
			logrus.Errorf("failed to disable rapid charge before exiting: %v", err)
		}
	}

	logrus.Info("exiting")
	return nil
}
