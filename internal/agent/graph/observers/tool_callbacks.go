package observers

import (
	"context"
	"errors"
	"io"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// newToolHandler builds a typed ToolCallbackHandler logging tool lifecycle events.
func newToolHandler() *callbackHelper.ToolCallbackHandler {
	return &callbackHelper.ToolCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *tool.CallbackInput) context.Context {
			evt := logx.Debug().Str("callback", "tool").Str("tool", info.Name)
			if input != nil {
				evt = evt.Str("arguments", input.ArgumentsInJSON)
			}
			evt.Msg("tool started")
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *tool.CallbackOutput) context.Context {
			evt := logx.Debug().Str("callback", "tool").Str("tool", info.Name)
			if output != nil {
				evt = evt.Str("response", output.Response)
			}
			evt.Msg("tool finished")
			return ctx
		},
		OnEndWithStreamOutput: func(ctx context.Context, info *einocb.RunInfo, output *schema.StreamReader[*tool.CallbackOutput]) context.Context {
			go func() {
				defer output.Close()
				for {
					chunk, err := output.Recv()
					if errors.Is(err, io.EOF) {
						return
					}
					if err != nil {
						return
					}
					logx.Debug().
						Str("callback", "tool").
						Str("tool", info.Name).
						Str("chunk", chunk.Response).
						Msg("tool streamed output")
				}
			}()
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Error().Str("callback", "tool").Str("tool", info.Name).Err(err).Msg("tool failed")
			return ctx
		},
	}
}
