package analysisHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/analysis"
	contextPkg "BreathePulse/pkg/context"
	"BreathePulse/pkg/handlerUtil"
	"BreathePulse/pkg/log"
)

// AnalyzeFrame accepts a webcam frame either as a multipart "image" upload or
// as a JSON base64 payload and returns the stress level plus the
// face-detected flag.
func (h *AnalysisHandler) AnalyzeFrame(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing frame analysis request")

	var frame []byte

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.Handle(ctx, requestID, analysis.ErrInvalidImage, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		base64Image, err := h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}

		frame, err = h.utils.DecodeBase64Image(base64Image)
		if err != nil {
			return errHandler.Handle(ctx, requestID, analysis.ErrInvalidImage, ctx.Path(), "decode_image")
		}
	} else {
		var req analysis.AnalyzeFrameRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		frame, err = h.utils.DecodeBase64Image(req.ImageBase64)
		if err != nil {
			return errHandler.Handle(ctx, requestID, analysis.ErrInvalidImage, ctx.Path(), "decode_image")
		}
	}

	result, err := h.analysisService.AnalyzeFrame(frame)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_frame")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":    requestID,
			"path":          ctx.Path(),
			"stress_level":  result.StressLevel,
			"face_detected": result.FaceDetected,
		}).Info("Frame analysis successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, analysis.AnalyzeFrameResponse{
			Data: *result,
		})
	}
}

// handleAnalysisWebSocket streams frame analyses: every binary message is one
// encoded frame, every reply one analysis result.
func (h *AnalysisHandler) handleAnalysisWebSocket(c *websocket.Conn) {
	h.log.Info("Stress analysis WebSocket client connected")
	defer h.log.Info("Stress analysis WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Stress analysis WebSocket error: %v", err)
			} else {
				h.log.Info("Stress analysis WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		result, err := h.analysisService.AnalyzeFrame(message)
		if err != nil {
			h.log.Errorf("Error analyzing frame: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
