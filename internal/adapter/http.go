// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpInventoryAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPInventoryAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to the API at adapterCfg.HTTPAddress. A bare
// "host:port" address is treated as http.
func NewHTTPInventoryAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpInventoryAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ---- boxes ----

func (h *httpInventoryAdapter) AddBox(ctx context.Context, box models.NewBox) (models.Box, error) {
	var created models.Box
	resp, err := h.jsonRequest(ctx, box).SetResult(&created).Post("/api/boxes")
	if err = h.check("add box", resp, err, boxRoute); err != nil {
		return models.Box{}, err
	}
	return created, nil
}

func (h *httpInventoryAdapter) UpdateBox(ctx context.Context, id string, update models.BoxUpdate) (models.Box, error) {
	if isBlank(id) {
		return models.Box{}, fmt.Errorf("update box: %w", inventory.ErrBoxNotFound)
	}
	var updated models.Box
	resp, err := h.jsonRequest(ctx, update).SetResult(&updated).Patch(boxPath(id))
	if err = h.check("update box", resp, err, boxRoute); err != nil {
		return models.Box{}, err
	}
	return updated, nil
}

func (h *httpInventoryAdapter) DeleteBox(ctx context.Context, id string) error {
	if isBlank(id) {
		return fmt.Errorf("delete box: %w", inventory.ErrBoxNotFound)
	}
	resp, err := h.request(ctx).Delete(boxPath(id))
	return h.check("delete box", resp, err, boxRoute)
}

func (h *httpInventoryAdapter) GetBoxByID(ctx context.Context, id string) (models.Box, error) {
	if isBlank(id) {
		return models.Box{}, fmt.Errorf("get box: %w", inventory.ErrBoxNotFound)
	}
	var box models.Box
	resp, err := h.request(ctx).SetResult(&box).Get(boxPath(id))
	if err = h.check("get box", resp, err, boxRoute); err != nil {
		return models.Box{}, err
	}
	return box, nil
}

// GetBoxByQrID resolves a scanned code through /api/scan. The code is path
// escaped so deep links survive the trip.
func (h *httpInventoryAdapter) GetBoxByQrID(ctx context.Context, code string) (models.Box, error) {
	if isBlank(code) {
		return models.Box{}, fmt.Errorf("scan box: %w", inventory.ErrBoxNotFound)
	}
	var box models.Box
	resp, err := h.request(ctx).SetResult(&box).Get("/api/scan/" + url.PathEscape(code))
	if err = h.check("scan box", resp, err, boxRoute); err != nil {
		return models.Box{}, err
	}
	return box, nil
}

func (h *httpInventoryAdapter) Boxes(ctx context.Context) ([]models.Box, error) {
	boxes := make([]models.Box, 0)
	resp, err := h.request(ctx).SetResult(&boxes).Get("/api/boxes")
	if err = h.check("list boxes", resp, err, boxRoute); err != nil {
		return nil, err
	}
	return boxes, nil
}

// ---- items ----

func (h *httpInventoryAdapter) AddItem(ctx context.Context, item models.NewItem) (models.Item, error) {
	if isBlank(item.BoxID) {
		return models.Item{}, fmt.Errorf("add item: %w", validators.ErrEmptyBoxID)
	}
	var created models.Item
	resp, err := h.jsonRequest(ctx, item).SetResult(&created).Post(boxPath(item.BoxID) + "/items")
	if err = h.check("add item", resp, err, outcome{notFound: boxRoute.notFound, conflict: itemRoute.conflict}); err != nil {
		return models.Item{}, err
	}
	return created, nil
}

func (h *httpInventoryAdapter) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.Item, error) {
	if isBlank(id) {
		return models.Item{}, fmt.Errorf("update item: %w", inventory.ErrItemNotFound)
	}
	var updated models.Item
	resp, err := h.jsonRequest(ctx, update).SetResult(&updated).Patch(itemPath(id))
	if err = h.check("update item", resp, err, itemRoute); err != nil {
		return models.Item{}, err
	}
	return updated, nil
}

func (h *httpInventoryAdapter) DeleteItem(ctx context.Context, id string) error {
	if isBlank(id) {
		return fmt.Errorf("delete item: %w", inventory.ErrItemNotFound)
	}
	resp, err := h.request(ctx).Delete(itemPath(id))
	return h.check("delete item", resp, err, itemRoute)
}

func (h *httpInventoryAdapter) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	if isBlank(id) {
		return models.Item{}, fmt.Errorf("get item: %w", inventory.ErrItemNotFound)
	}
	var item models.Item
	resp, err := h.request(ctx).SetResult(&item).Get(itemPath(id))
	if err = h.check("get item", resp, err, itemRoute); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (h *httpInventoryAdapter) GetItemsByBoxID(ctx context.Context, boxID string) ([]models.Item, error) {
	if isBlank(boxID) {
		return []models.Item{}, nil
	}
	items := make([]models.Item, 0)
	resp, err := h.request(ctx).SetResult(&items).Get(boxPath(boxID) + "/items")
	if err = h.check("list box items", resp, err, outcome{}); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpInventoryAdapter) Items(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	resp, err := h.request(ctx).SetResult(&items).Get("/api/items")
	if err = h.check("list items", resp, err, outcome{}); err != nil {
		return nil, err
	}
	return items, nil
}

// ---- views ----

// GetItemCount counts the items of a box from its item listing.
func (h *httpInventoryAdapter) GetItemCount(ctx context.Context, boxID string) (int, error) {
	items, err := h.GetItemsByBoxID(ctx, boxID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// GetBoxItemQuantity sums the quantities of a box from its item listing.
func (h *httpInventoryAdapter) GetBoxItemQuantity(ctx context.Context, boxID string) (int, error) {
	items, err := h.GetItemsByBoxID(ctx, boxID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total, nil
}

func (h *httpInventoryAdapter) GetTotalItemCount(ctx context.Context) (int, error) {
	stats, err := h.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.TotalItems, nil
}

func (h *httpInventoryAdapter) Search(ctx context.Context, query string) (models.SearchResult, error) {
	var result models.SearchResult
	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		SetResult(&result).
		Get("/api/search")
	if err = h.check("search", resp, err, outcome{}); err != nil {
		return models.SearchResult{}, err
	}

	if result.Boxes == nil {
		result.Boxes = []models.Box{}
	}
	if result.Items == nil {
		result.Items = []models.Item{}
	}
	return result, nil
}

func (h *httpInventoryAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	resp, err := h.request(ctx).SetResult(&stats).Get("/api/stats")
	if err = h.check("stats", resp, err, outcome{}); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

func (h *httpInventoryAdapter) GetBuildInfo(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	resp, err := h.request(ctx).SetResult(&info).Get("/api/version")
	if err = h.check("version", resp, err, outcome{}); err != nil {
		return models.AppBuildInfo{}, err
	}
	return info, nil
}

// ---- plumbing ----

func (h *httpInventoryAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpInventoryAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// check turns a transport error or a non-2xx answer into an error for op.
func (h *httpInventoryAdapter) check(op string, resp *resty.Response, err error, o outcome) error {
	if err != nil {
		h.logger.Err(err).Str("func", "httpInventoryAdapter."+op).Msg("request failed")
		return fmt.Errorf("%s: %w: %w", op, ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp, o); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// isBlank reports ids that cannot address a resource; the router would
// answer them with an unrelated route.
func isBlank(id string) bool {
	return strings.TrimSpace(id) == ""
}

func boxPath(id string) string {
	return "/api/boxes/" + url.PathEscape(id)
}

func itemPath(id string) string {
	return "/api/items/" + url.PathEscape(id)
}
