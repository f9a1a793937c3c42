package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yeohaeng/trip-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service writes the synthesized itinerary to the process output channels.
type Service interface {
	Emit(itinerary *types.Itinerary) error
}

type ServiceImpl struct {
	logger   *slog.Logger
	out      io.Writer
	filePath string
}

func NewServiceImpl(out io.Writer, filePath string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, out: out, filePath: filePath}
}

// Emit writes the single-line JSON to the primary output and a pretty copy to
// the plan file. The stdout emission is the contract: a failed file write is
// logged and swallowed.
func (s *ServiceImpl) Emit(itinerary *types.Itinerary) error {
	compact, err := marshalItinerary(itinerary, "")
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	if _, err := s.out.Write(compact); err != nil {
		return fmt.Errorf("failed to write itinerary to output: %w", err)
	}

	if err := s.writeFile(itinerary); err != nil {
		s.logger.Warn("failed to persist itinerary file",
			slog.String("path", s.filePath), slog.Any("error", err))
	}
	return nil
}

func (s *ServiceImpl) writeFile(itinerary *types.Itinerary) error {
	pretty, err := marshalItinerary(itinerary, "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, pretty, 0o644)
}

// marshalItinerary keeps non-ASCII text and angle brackets as-is instead of
// the encoder's default HTML escaping; downstream consumers read the bytes
// verbatim.
func marshalItinerary(itinerary *types.Itinerary, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(itinerary); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
