package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getIntParam parses an optional integer query parameter. An absent
// parameter yields the default; a malformed value is an error.
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}

	return value, nil
}

func getInt64Param(c echo.Context, name string, defaultValue int64) (int64, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}

	return value, nil
}
