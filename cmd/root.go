package cmd

import (
	"blend/config"
	"blend/core"
	"fmt"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var (
	cfgFile     string
	cfg         core.Config
	debugMode   bool
	jsonLog     bool
	snapshotDir string
	initialized bool
)

var rootCmd = cobra.Command{
	Use:   "blend",
	Short: "blend pool rates and backstop economics",
}

func init() {
	cobra.OnInitialize(initConfig, initLogging, initDone)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file. default is ~/.blend.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable or disable debug model")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "log in json")
	rootCmd.PersistentFlags().StringVar(&snapshotDir, "pools", "", "directory of pool snapshot files, overrides snapshot.dir")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ver string) {
	rootCmd.Version = ver
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func initConfig() {
	if initialized {
		return
	}

	if cfgFile == "" {
		dir, err := homedir.Dir()
		if err != nil {
			panic(err)
		}

		filename := path.Join(dir, ".blend.yaml")
		info, err := os.Stat(filename)
		if err == nil && !info.IsDir() {
			cfgFile = filename
		}
	}

	if cfgFile != "" {
		logrus.Debugln("use config file", cfgFile)
	}

	if err := config.Load(cfgFile, &cfg); err != nil {
		panic(err)
	}

	if snapshotDir != "" {
		cfg.Snapshot.Dir = snapshotDir
	}
}

func initLogging() {
	if initialized {
		return
	}

	if debugMode {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if jsonLog {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logrus.WithFields(logrus.Fields{
		"pools":  cfg.Snapshot.Dir,
		"oracle": cfg.PriceOracle.EndPoint,
	}).Debugln("config loaded")

	structs.DefaultTagName = "json"
}

func initDone() {
	initialized = true
}
