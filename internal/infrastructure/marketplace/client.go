// Package marketplace implementa el cliente HTTP del API de integración del
// marketplace (Trendyol). Solo lectura: el almacén nunca escribe stock remoto.
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ marketplace.API = (*Client)(nil)

// Client adaptador HTTP del marketplace. Autenticación HTTP Basic con
// api key/secret y User-Agent "<sellerID> - SelfIntegration", como exige el
// API de integración.
type Client struct {
	cfg        config.MarketplaceConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. Si faltan credenciales no falla aquí: cada
// llamada devuelve ErrRemoteCredentialsMissing, para que el resto del panel
// funcione sin marketplace configurado.
func NewClient(cfg config.MarketplaceConfig, log *logger.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// remoteError payload de error que devuelve el marketplace en fallos 4xx/5xx.
type remoteError struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Message string `json:"message"`
}

// FetchProducts una página del catálogo remoto.
func (c *Client) FetchProducts(ctx context.Context, page, size int) (*marketplace.ListingPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out marketplace.ListingPage
	path := fmt.Sprintf("/product/sellers/%s/products", c.cfg.SellerID)
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchOrders pedidos filtrados por estado y rango de fechas.
func (c *Client) FetchOrders(ctx context.Context, query marketplace.OrderQuery) (*marketplace.OrderPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(query.Page))
	q.Set("size", strconv.Itoa(query.Size))
	q.Set("orderByField", "PackageLastModifiedDate")
	q.Set("orderByDirection", "DESC")
	for _, status := range query.Statuses {
		q.Add("status", status)
	}
	if query.StartDate > 0 {
		q.Set("startDate", strconv.FormatInt(query.StartDate, 10))
	}
	if query.EndDate > 0 {
		q.Set("endDate", strconv.FormatInt(query.EndDate, 10))
	}

	var out marketplace.OrderPage
	path := fmt.Sprintf("/order/sellers/%s/orders", c.cfg.SellerID)
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchOrderByNumber un pedido puntual. Nil si el marketplace no lo conoce.
func (c *Client) FetchOrderByNumber(ctx context.Context, orderNumber string) (*marketplace.Order, error) {
	q := url.Values{}
	q.Set("orderNumber", orderNumber)

	var out marketplace.OrderPage
	path := fmt.Sprintf("/order/sellers/%s/orders", c.cfg.SellerID)
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	if len(out.Content) == 0 {
		return nil, nil
	}
	return &out.Content[0], nil
}

// FetchClaims solicitudes de devolución en un rango de fechas.
func (c *Client) FetchClaims(ctx context.Context, page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if startDate > 0 {
		q.Set("startDate", strconv.FormatInt(startDate, 10))
	}
	if endDate > 0 {
		q.Set("endDate", strconv.FormatInt(endDate, 10))
	}

	var out marketplace.ClaimPage
	path := fmt.Sprintf("/claims/sellers/%s/claims", c.cfg.SellerID)
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get ejecuta un GET autenticado y decodifica la respuesta JSON en out.
//
// Taxonomía de errores:
//   - credenciales ausentes            → ErrRemoteCredentialsMissing
//   - status fuera de 2xx              → ErrRemoteRequestFailed (con status y mensaje remoto)
//   - content-type no JSON / body roto → ErrRemoteResponseMalformed
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if !c.cfg.Configured() {
		return domain.ErrRemoteCredentialsMissing
	}

	reqURL := c.cfg.BaseURL + path
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteRequestFailed, err)
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)
	req.Header.Set("User-Agent", c.cfg.SellerID+" - SelfIntegration")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := c.readErrorMessage(resp.Body)
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("remote_msg", msg).
			Msg("el marketplace rechazó la petición")
		if msg != "" {
			return fmt.Errorf("%w: status %d: %s", domain.ErrRemoteRequestFailed, resp.StatusCode, msg)
		}
		return fmt.Errorf("%w: status %d", domain.ErrRemoteRequestFailed, resp.StatusCode)
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		return fmt.Errorf("%w: content-type %q", domain.ErrRemoteResponseMalformed, resp.Header.Get("Content-Type"))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteResponseMalformed, err)
	}
	return nil
}

// readErrorMessage intenta extraer el mensaje del payload de error remoto.
// Best-effort: si el body no es el formato esperado devuelve "".
func (c *Client) readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var re remoteError
	if err := json.Unmarshal(raw, &re); err != nil {
		return ""
	}
	if len(re.Errors) > 0 {
		return re.Errors[0].Message
	}
	return re.Message
}

func isJSONContentType(ct string) bool {
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
