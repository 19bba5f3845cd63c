package logger

import (
	"InterVue/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化 slog：标准输出 + 滚动文件 + 可选的 Logstash
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: parseLevel(cfg.Level)}

	writers := []io.Writer{os.Stdout}
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    nonZero(cfg.MaxSizeMB, 100),
			MaxBackups: nonZero(cfg.MaxBackups, 3),
			MaxAge:     nonZero(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress,
		})
	}
	LogWriter = io.MultiWriter(writers...)

	var finalHandler log.Handler = log.NewJSONHandler(LogWriter, opts)

	if cfg.LogstashAddress != "" {
		conn, err := net.Dial("tcp", cfg.LogstashAddress)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, opts).
				WithAttrs([]log.Attr{log.String("target_index", cfg.LogstashIndex)})
			finalHandler = &TeeHandler{
				handlers: []log.Handler{finalHandler, &RemoteFilterHandler{next: hRemote}},
			}
		} else {
			log.Warn("Failed to connect to Logstash, logging locally only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func nonZero(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
