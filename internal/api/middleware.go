package api

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// ZstdMiddleware decompresses request bodies sent with Content-Encoding: zstd
// and compresses responses when the client accepts zstd. Raw image uploads
// compress well enough that clients on slow links use it.
func ZstdMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.Contains(strings.ToLower(c.Get("Content-Encoding")), "zstd") {
			r, err := zstd.NewReader(bytes.NewReader(c.Body()))
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to create reader for request body")
				return c.Status(fiber.StatusBadRequest).SendString("invalid zstd request body")
			}
			defer r.Close()

			out, err := io.ReadAll(r)
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to decompress request body")
				return c.Status(fiber.StatusBadRequest).SendString("invalid zstd request body")
			}

			c.Request().SetBody(out)
			c.Request().Header.Set("Content-Length", strconv.Itoa(len(out)))
			c.Request().Header.Del("Content-Encoding")
		}

		if err := c.Next(); err != nil {
			return err
		}

		if strings.Contains(strings.ToLower(c.Get("Accept-Encoding")), "zstd") {
			respBody := c.Response().Body()
			var buf bytes.Buffer
			w, err := zstd.NewWriter(&buf)
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to create writer for response body")
				return nil
			}
			if _, err := w.Write(respBody); err != nil {
				_ = w.Close()
				log.Error().Err(err).Msg("zstd: failed to compress response body")
				return nil
			}
			_ = w.Close()

			c.Response().SetBody(buf.Bytes())
			c.Response().Header.Set("Content-Encoding", "zstd")
			c.Response().Header.Set("Content-Length", strconv.Itoa(buf.Len()))
		}

		return nil
	}
}
