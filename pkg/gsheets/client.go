package gsheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"study-slot-scheduler/pkg/googleauth"
)

// DefaultCallTimeout bounds every remote call, mirroring pkg/gcalendar.
const DefaultCallTimeout = 30 * time.Second

// Client wraps the Google Sheets API service for a single spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	callTimeout   time.Duration
}

// NewClientFromSource creates a Sheets client from a resolved credential source.
func NewClientFromSource(ctx context.Context, src googleauth.Source, spreadsheetID string, callTimeout time.Duration) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	config, err := google.JWTConfigFromJSON(src.JSON(), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format for sheets: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: svc, spreadsheetID: spreadsheetID, callTimeout: callTimeout}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID, callTimeout: DefaultCallTimeout}, nil
}

func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}

// EnsureSheet guarantees a tab with the given title exists and that its first
// row exactly matches the expected header, (re)writing the header if needed.
// Idempotent; runs before every read and write.
func (c *Client) EnsureSheet(ctx context.Context, title string, header []string) error {
	exists, err := c.sheetExists(ctx, title)
	if err != nil {
		return err
	}

	if !exists {
		if err := c.addSheet(ctx, title); err != nil {
			return err
		}
	}

	current, err := c.readRow(ctx, title, 1)
	if err != nil {
		return err
	}
	if rowEquals(current, header) {
		return nil
	}

	return c.writeRange(ctx, fmt.Sprintf("%s!A1", title), [][]any{toAnyRow(header)})
}

// WriteRows overwrites the fixed-size block immediately below the header.
func (c *Client) WriteRows(ctx context.Context, title string, rows [][]string) error {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = toAnyRow(row)
	}
	return c.writeRange(ctx, fmt.Sprintf("%s!A2", title), values)
}

// ClearRows removes every row below the header; the header itself is preserved.
func (c *Client) ClearRows(ctx context.Context, title string) error {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	rangeRef := fmt.Sprintf("%s!A2:Z", title)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, rangeRef, &sheets.ClearValuesRequest{}).
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", title, err)
	}
	return nil
}

func (c *Client) sheetExists(ctx context.Context, title string) (bool, error) {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(callCtx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) addSheet(ctx context.Context, title string) error {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			},
		},
	}).Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", title, err)
	}
	return nil
}

func (c *Client) readRow(ctx context.Context, title string, row int) ([]string, error) {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	rangeRef := fmt.Sprintf("%s!A%d:Z%d", title, row, row)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rangeRef).Context(callCtx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", title, err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	cells := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		cells = append(cells, fmt.Sprint(cell))
	}
	return cells, nil
}

func (c *Client) writeRange(ctx context.Context, rangeRef string, values [][]any) error {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rangeRef, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("failed to write range %s: %w", rangeRef, err)
	}
	return nil
}

func rowEquals(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func toAnyRow(row []string) []any {
	out := make([]any, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}
