package httpserver

import (
	"net/http"
	"strconv"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidID = errs.Errorf(errs.EINVALID, "Invalid id")

func writeList(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func writeMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// writeCreated answers a successful insert with the message and the new row
// id under idField, e.g. {"message":"Actor added","actor_id":7}.
func writeCreated(c echo.Context, message, idField string, id int64) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
		idField:   id,
	})
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}
