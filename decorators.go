package fluent

import (
	"log/slog"
)

// Localizer formats a message by id. *Localization implements it.
type Localizer interface {
	FormatValue(id string, args Args) (string, []error, error)
}

type metadataLocalizer interface {
	FormatValueWithMetadata(id string, args Args) (string, map[string]any, []error, error)
}

var _ metadataLocalizer = (*Localization)(nil)

// FormatHook observes, and may rewrite, a formatting call.
type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

type FormatHookContext struct {
	ID          string
	Args        Args
	Locale      string
	Result      string
	Diagnostics []error
	Error       error
	Metadata    map[string]any
}

func (ctx *FormatHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type FormatHookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

func (h FormatHookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h FormatHookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Localizer = &HookedLocalizer{}

type HookedLocalizer struct {
	next  Localizer
	hooks []FormatHook
}

func WrapWithHooks(next Localizer, hooks ...FormatHook) Localizer {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]FormatHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedLocalizer{next: next, hooks: filtered}
}

func (h *HookedLocalizer) FormatValue(id string, args Args) (string, []error, error) {
	if h == nil || h.next == nil {
		return "", nil, newError(ErrMissingMessage, id)
	}

	ctx := &FormatHookContext{
		ID:   id,
		Args: args,
	}

	for _, hook := range h.hooks {
		hook.BeforeFormat(ctx)
	}

	var (
		result   string
		errs     []error
		err      error
		metadata map[string]any
	)

	if ml, ok := h.next.(metadataLocalizer); ok {
		result, metadata, errs, err = ml.FormatValueWithMetadata(ctx.ID, ctx.Args)
		for key, value := range metadata {
			ctx.SetMetadata(key, value)
		}
		if locale, ok := metadata["locale"].(string); ok {
			ctx.Locale = locale
		}
	} else {
		result, errs, err = h.next.FormatValue(ctx.ID, ctx.Args)
	}

	ctx.Result = result
	ctx.Diagnostics = errs
	ctx.Error = err

	for _, hook := range h.hooks {
		hook.AfterFormat(ctx)
	}

	return ctx.Result, ctx.Diagnostics, ctx.Error
}

// LoggingHook logs calls that produced diagnostics at warn level and calls
// for missing messages at error level.
func LoggingHook(logger *slog.Logger) FormatHook {
	if logger == nil {
		return nil
	}
	return FormatHookFuncs{
		After: func(ctx *FormatHookContext) {
			switch {
			case ctx.Error != nil:
				logger.Error("message not formatted",
					slog.String("id", ctx.ID),
					slog.Any("error", ctx.Error),
				)
			case len(ctx.Diagnostics) > 0:
				logger.Warn("message formatted with errors",
					slog.String("id", ctx.ID),
					slog.String("locale", ctx.Locale),
					slog.Any("errors", ctx.Diagnostics),
				)
			}
		},
	}
}
