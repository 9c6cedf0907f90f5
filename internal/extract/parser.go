package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
)

// Parser picks a text-extraction strategy based on the declared format.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

func (p *Parser) Parse(ctx context.Context, doc RawDocument) (string, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch doc.Format {
	case constants.PDF:
		text, err = parsePDF(doc.Content)
	case constants.DOCX:
		text, err = parseDOCX(doc.Content)
	default:
		p.logger.Error("unsupported document format", "filename", doc.Filename, "format", string(doc.Format))
		return "", common.NewAppError("UNSUPPORTED_MEDIA_TYPE", "use .pdf or .docx", common.ErrUnsupportedMediaType)
	}
	if err != nil {
		p.logger.Error("parse.failed", "filename", doc.Filename, "format", string(doc.Format), "error", err)
		return "", common.NewAppError("PARSE_FAILURE", doc.Filename, fmt.Errorf("%w: %v", common.ErrParseFailure, err))
	}

	p.logger.Debug("parse.ok",
		"filename", doc.Filename,
		"format", string(doc.Format),
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
