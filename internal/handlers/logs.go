package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/logger"
	"portfolio/internal/utils/helpers"

	"go.uber.org/zap"
)

// AdminLogsHandler отдаёт JSON-строки из файлов lumberjack:
// текущий app.log (за сегодня) и ротированные app-<timestamp>.log[.gz].
type AdminLogsHandler struct {
	LogDir    string
	Retention int // дней
	now       func() time.Time
}

func NewAdminLogsHandler(logDir string) *AdminLogsHandler {
	return &AdminLogsHandler{LogDir: logDir, Retention: 14, now: time.Now}
}

// LogsPage: страница строк лога за день.
type LogsPage struct {
	Day        string            `json:"day"`
	Items      []json.RawMessage `json:"items"`
	NextCursor int               `json:"next_cursor"`
}

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ListDays godoc
// @Summary      Доступные дни логов
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {array} string
// @Router       /api/admin/logs/days [get]
func (h *AdminLogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	today := h.now().Local()
	days := make([]string, 0, h.Retention)
	for i := 0; i < h.Retention; i++ {
		d := today.AddDate(0, 0, -i).Format("2006-01-02")
		if files, err := h.filesForDay(d); err == nil && len(files) > 0 {
			days = append(days, d)
		}
	}
	sort.Strings(days)
	helpers.JSON(w, http.StatusOK, days)
}

// GetLogs godoc
// @Summary      Логи за день
// @Description  JSON-строки лога за день с фильтром по уровню и подстроке.
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Param        day     query  string true  "Дата (YYYY-MM-DD)"
// @Param        level   query  string false "CSV уровней: debug,info,warn,error"
// @Param        q       query  string false "Поиск по подстроке"
// @Param        limit   query  int    false "Лимит (по умолч. 200, макс. 1000)"
// @Param        cursor  query  int    false "Номер строки, с которой продолжить"
// @Success      200 {object} LogsPage
// @Failure      400 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Router       /api/admin/logs [get]
func (h *AdminLogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	day := query.Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}

	levels := levelSet(query.Get("level"))
	needle := strings.ToLower(strings.TrimSpace(query.Get("q")))
	limit := clampAtoi(query.Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(query.Get("cursor"), 0, 0, 10_000_000)

	files, err := h.filesForDay(day)
	if err != nil || len(files) == 0 {
		helpers.Error(w, http.StatusNotFound, "day not found")
		return
	}

	page := LogsPage{Day: day, Items: make([]json.RawMessage, 0)}
	lineNo := 0
	for _, path := range files {
		err := eachLine(path, func(raw []byte) bool {
			lineNo++
			if lineNo <= cursor {
				return true
			}
			if needle != "" && !strings.Contains(strings.ToLower(string(raw)), needle) {
				return true
			}
			var entry struct {
				Level string `json:"level"`
			}
			// консольные строки не JSON и пропускаются
			if json.Unmarshal(raw, &entry) != nil {
				return true
			}
			if len(levels) > 0 && !levels[strings.ToLower(entry.Level)] {
				return true
			}
			page.Items = append(page.Items, append(json.RawMessage(nil), raw...))
			return len(page.Items) < limit
		})
		if err != nil {
			logger.WithCtx(r.Context()).Warn("logs: не удалось прочитать файл", zap.String("file", path), zap.Error(err))
		}
		if len(page.Items) >= limit {
			break
		}
	}
	page.NextCursor = lineNo

	helpers.JSON(w, http.StatusOK, page)
}

// filesForDay: файлы дня в хронологическом порядке; текущий app.log последним.
func (h *AdminLogsHandler) filesForDay(day string) ([]string, error) {
	entries, err := os.ReadDir(h.LogDir)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(logger.LogFile, filepath.Ext(logger.LogFile))
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, base+"-"+day) {
			continue
		}
		if strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz") {
			files = append(files, filepath.Join(h.LogDir, name))
		}
	}
	sort.Strings(files)

	if day == h.now().Local().Format("2006-01-02") {
		current := filepath.Join(h.LogDir, logger.LogFile)
		if _, err := os.Stat(current); err == nil {
			files = append(files, current)
		}
	}
	return files, nil
}

// eachLine вызывает handle для каждой строки файла, пока тот возвращает true.
func eachLine(path string, handle func([]byte) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !handle(sc.Bytes()) {
			return nil
		}
	}
	return sc.Err()
}

func levelSet(csv string) map[string]bool {
	if csv == "" {
		return nil
	}
	m := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			m[p] = true
		}
	}
	return m
}

func clampAtoi(s string, def, min, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
