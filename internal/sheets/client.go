// Package sheets wraps the Google Sheets and Drive APIs for the single
// configured spreadsheet. Everything else in the system talks to the sheet
// through this adapter.
package sheets

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/time/rate"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/teamtrack-hr/teamtrack-backend/config"
)

// dataRange covers the positional columns below the header row. Reads use
// the whole span; single-row writes narrow it to one row.
const dataRange = "A2:Z1000"

// SpreadsheetInfo is the diagnostics payload for the connectivity probe.
type SpreadsheetInfo struct {
	Title      string `json:"title"`
	SheetCount int    `json:"sheetCount"`
	FirstSheet string `json:"firstSheet"`
}

type Client struct {
	svc           *gsheets.Service
	drive         *gdrive.Service
	spreadsheetID string
	limiter       *rate.Limiter

	// first-tab metadata, fetched once; the tab is resolved dynamically
	// rather than configured by name
	mu         sync.Mutex
	sheetTitle string
	sheetID    int64
	metaLoaded bool
}

func NewClient(ctx context.Context, cfg config.GoogleConfig) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope, gdrive.DriveReadonlyScope))

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	driveSvc, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	return &Client{
		svc:           svc,
		drive:         driveSvc,
		spreadsheetID: cfg.SpreadsheetID,
		// Sheets quota is 60 reads/min/user; stay well under it
		limiter: rate.NewLimiter(rate.Limit(1), 4),
	}, nil
}

// firstSheet resolves and caches the first worksheet's title and numeric id.
func (c *Client) firstSheet(ctx context.Context) (string, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metaLoaded {
		return c.sheetTitle, c.sheetID, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", 0, err
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", 0, fmt.Errorf("spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 || meta.Sheets[0].Properties == nil {
		return "", 0, fmt.Errorf("spreadsheet %s has no worksheets", c.spreadsheetID)
	}

	props := meta.Sheets[0].Properties
	c.sheetTitle = props.Title
	c.sheetID = props.SheetId
	c.metaLoaded = true
	return c.sheetTitle, c.sheetID, nil
}

// ReadRows fetches the data span of the first worksheet as raw cell strings.
func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	title, _, err := c.firstSheet(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title+"!"+dataRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dataRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// HeaderRow fetches row 1 of the first worksheet.
func (c *Client) HeaderRow(ctx context.Context) ([]string, error) {
	title, _, err := c.firstSheet(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title+"!A1:Z1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, cellString(cell))
	}
	return header, nil
}

// UpdateRow overwrites one 1-indexed sheet row in place.
func (c *Client) UpdateRow(ctx context.Context, rowNumber int64, cells []string) error {
	title, _, err := c.firstSheet(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	rng := fmt.Sprintf("%s!A%d:Z%d", title, rowNumber, rowNumber)
	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, &gsheets.ValueRange{Values: [][]interface{}{cellValues(cells)}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

// AppendRow appends one row after the current data region.
func (c *Client) AppendRow(ctx context.Context, cells []string) error {
	title, _, err := c.firstSheet(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err = c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, title+"!A:Z", &gsheets.ValueRange{Values: [][]interface{}{cellValues(cells)}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// DeleteRow removes the row at the given zero-based grid index.
func (c *Client) DeleteRow(ctx context.Context, rowIndex int64) error {
	_, sheetID, err := c.firstSheet(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: rowIndex,
					EndIndex:   rowIndex + 1,
				},
			},
		}},
	}

	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d: %w", rowIndex, err)
	}
	return nil
}

// Export downloads the whole spreadsheet converted to the given MIME type
// through the Drive export endpoint.
func (c *Client) Export(ctx context.Context, mimeType string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.drive.Files.Export(c.spreadsheetID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive export as %s: %w", mimeType, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export body: %w", err)
	}
	return data, nil
}

// Probe fetches spreadsheet metadata for the connectivity diagnostics route.
func (c *Client) Probe(ctx context.Context) (*SpreadsheetInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet metadata: %w", err)
	}

	info := &SpreadsheetInfo{SheetCount: len(meta.Sheets)}
	if meta.Properties != nil {
		info.Title = meta.Properties.Title
	}
	if len(meta.Sheets) > 0 && meta.Sheets[0].Properties != nil {
		info.FirstSheet = meta.Sheets[0].Properties.Title
	}
	return info, nil
}

// SpreadsheetURL is the browser URL of the backing sheet. No per-user
// filtering is applied; everyone gets the same document.
func (c *Client) SpreadsheetURL() string {
	return "https://docs.google.com/spreadsheets/d/" + c.spreadsheetID
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}

func cellValues(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
