package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	mccmd "github.com/mccmdhl/mccmdhl2"
	"github.com/mccmdhl/mccmdhl2/internal/idtable"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func parseVersionFlag() (version.Version, error) {
	parts := strings.Split(targetVersion, ".")
	if len(parts) != 3 {
		return version.Version{}, fmt.Errorf("--version must be M.m.p, got %q", targetVersion)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return version.Version{}, fmt.Errorf("--version must be M.m.p, got %q: %w", targetVersion, err)
		}
		nums[i] = n
	}
	return version.New(nums[0], nums[1], nums[2]), nil
}

func buildParser() (*mccmd.Parser, error) {
	v, err := parseVersionFlag()
	if err != nil {
		return nil, err
	}
	if idTablePath == "" {
		return mccmd.NewParser(v), nil
	}
	data, err := os.ReadFile(idTablePath)
	if err != nil {
		return nil, fmt.Errorf("reading id table: %w", err)
	}
	ids, err := idtable.Load(data, false)
	if err != nil {
		return nil, fmt.Errorf("loading id table: %w", err)
	}
	if logger != nil {
		logger.Info("loaded id table catalogue", zap.String("path", idTablePath))
	}
	return mccmd.NewParserWithCatalogue(v, ids), nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}
