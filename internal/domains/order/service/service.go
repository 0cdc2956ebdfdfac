package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/infras/storage"
	"hospitality/internal/domains/order/model"
	"hospitality/internal/domains/order/model/dto"
	"hospitality/internal/domains/order/repository"
	"hospitality/shared"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"hospitality/shared/timezone"
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	orderSubject     = "Order Confirmation"
	exportSheetName  = "Orders"
	receiptMimeType  = "text/html"
	receiptExtension = ".html"
)

var receiptTemplate = template.Must(template.New("order_receipt").Parse(`
<h1>Order Receipt</h1>
<p>Order ID: {{.ID}}<br>
Date: {{.Date}}<br>
Customer: {{.CustomerName}}<br>
Phone: {{.Phone}}<br>
Email: {{.Email}}</p>
<h3>Order Items</h3>
<ul>
{{range .Items}}<li>{{.Name}}{{if .Special}} - {{.Special}}{{end}} - &#8377;{{printf "%.2f" .Price}}</li>
{{end}}</ul>
<p><strong>Total: &#8377;{{printf "%.2f" .Total}}</strong></p>
<p>Payment Method: {{.PaymentMethod}}<br>
Status: {{.Status}}</p>
<p>Thank you for your order!</p>
`))

var confirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<h3>Dear {{.CustomerName}},</h3>
<p>Thank you for your order! Here are your order details:</p>
<ul>
{{range .Items}}<li>{{.Name}}{{if .Special}} - {{.Special}}{{end}} @ &#8377;{{printf "%.2f" .Price}}</li>
{{end}}</ul>
<p><strong>Total Amount:</strong> &#8377;{{printf "%.2f" .Total}}</p>
<p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
{{if .ReceiptURL}}<p>Your receipt: <a href="{{.ReceiptURL}}">{{.ReceiptURL}}</a></p>{{end}}
`))

type receiptData struct {
	ID            int64
	Date          string
	CustomerName  string
	Phone         string
	Email         string
	Items         []dto.OrderItem
	Total         float64
	PaymentMethod string
	Status        string
	ReceiptURL    string
}

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id int64) error
	Export(ctx context.Context, filter gDto.FilterGroup) ([]byte, error)
}

type serviceImpl struct {
	repo    repository.Order
	cfg     *config.Config
	mailer  mail.Mailer
	storage storage.Storage
	otel    otel.Otel
}

func New(repo repository.Order, cfg *config.Config, mailer mail.Mailer, storage storage.Storage, otel otel.Otel) Order {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		mailer:  mailer,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to insert order")

		return res, err
	}

	res.Message = "Order placed successfully"
	res.ID = id

	// Everything past the insert is best effort: the order stands even when
	// the refetch, the receipt or the email fails.
	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil || order.ID == 0 {
		log.Error().Err(err).Int64("id", id).Msg("failed to refetch order")

		res.Warnings = append(res.Warnings, "receipt could not be generated")
		res.Warnings = append(res.Warnings, "confirmation email could not be sent")

		return res, nil
	}

	data := buildReceiptData(order)

	receiptURL, warning := s.generateReceipt(ctx, data)
	if warning != constant.Empty {
		res.Warnings = append(res.Warnings, warning)
	}

	res.ReceiptURL = receiptURL
	data.ReceiptURL = receiptURL

	if warning := s.sendConfirmation(ctx, order.Email, data); warning != constant.Empty {
		res.Warnings = append(res.Warnings, warning)
	}

	return res, nil
}

func (s *serviceImpl) generateReceipt(ctx context.Context, data receiptData) (string, string) {
	body := bytes.Buffer{}
	if err := receiptTemplate.Execute(&body, data); err != nil {
		log.Error().Err(err).Int64("id", data.ID).Msg("failed to render order receipt")

		return constant.Empty, "receipt could not be generated"
	}

	fileName := fmt.Sprintf("order_%d%s", data.ID, receiptExtension)

	url, err := s.storage.SaveBytes(ctx, fileName, receiptMimeType, body.Bytes())
	if err != nil {
		log.Error().Err(err).Int64("id", data.ID).Msg("failed to save order receipt")

		return constant.Empty, "receipt could not be generated"
	}

	return url, constant.Empty
}

func (s *serviceImpl) sendConfirmation(ctx context.Context, to string, data receiptData) string {
	body := bytes.Buffer{}
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		log.Error().Err(err).Int64("id", data.ID).Msg("failed to render order confirmation email")

		return "confirmation email could not be sent"
	}

	if err := s.mailer.Send(ctx, []string{to}, orderSubject, body.String()); err != nil {
		log.Error().Err(err).Int64("id", data.ID).Msg("failed to send order confirmation email")

		return "confirmation email could not be sent"
	}

	return constant.Empty
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, err
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, err
	}

	res.FromModels(orders, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status == model.StatusRejected && req.RejectionReason == constant.Empty {
		return failure.BadRequestFromString("Missing required fields.")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check order existence")

		return err
	}

	if !exist {
		return failure.NotFound("Order not found")
	}

	updatedFields := map[string]any{
		model.FieldStatus:          req.Status,
		model.FieldRejectionReason: req.RejectionReason,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update order status")

		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

func (s *serviceImpl) Export(ctx context.Context, filter gDto.FilterGroup) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	orders, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders for export")

		return nil, err
	}

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close export workbook")
		}
	}()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create export style: %w", err)
	}

	defaultSheet := file.GetSheetName(0)

	if _, err = file.NewSheet(exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}

	header := []interface{}{
		excelize.Cell{Value: "id", StyleID: headerStyle},
		excelize.Cell{Value: "customer_name", StyleID: headerStyle},
		excelize.Cell{Value: "phone", StyleID: headerStyle},
		excelize.Cell{Value: "email", StyleID: headerStyle},
		excelize.Cell{Value: "address", StyleID: headerStyle},
		excelize.Cell{Value: "items", StyleID: headerStyle},
		excelize.Cell{Value: "total", StyleID: headerStyle},
		excelize.Cell{Value: "payment_method", StyleID: headerStyle},
		excelize.Cell{Value: "status", StyleID: headerStyle},
		excelize.Cell{Value: "rejection_reason", StyleID: headerStyle},
		excelize.Cell{Value: "created_at", StyleID: headerStyle},
	}

	writer, err := file.NewStreamWriter(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create export writer: %w", err)
	}

	if err = writer.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, order := range orders {
		items := []dto.OrderItem{}
		if order.Items != constant.Empty {
			_ = json.Unmarshal([]byte(order.Items), &items)
		}

		names := make([]string, 0, len(items))
		total := 0.0
		for _, item := range items {
			names = append(names, item.Name)
			total += item.Price
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			order.ID,
			order.CustomerName,
			order.Phone,
			order.Email,
			order.Address,
			strings.Join(names, ", "),
			total,
			order.PaymentMethod,
			order.Status,
			order.RejectionReason,
			timezone.Format(order.CreatedAt, constant.DateFormat),
		}

		if err = writer.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush export sheet: %w", err)
	}

	if defaultSheet != exportSheetName {
		_ = file.DeleteSheet(defaultSheet)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write export workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func buildReceiptData(order model.Order) receiptData {
	items := []dto.OrderItem{}
	if order.Items != constant.Empty {
		_ = json.Unmarshal([]byte(order.Items), &items)
	}

	total := 0.0
	for _, item := range items {
		total += item.Price
	}

	paymentMethod := "Cash on Delivery"
	if order.PaymentMethod == model.PaymentMethodUPI {
		paymentMethod = "UPI Payment"
	}

	return receiptData{
		ID:            order.ID,
		Date:          timezone.Format(order.CreatedAt, constant.DateFormat),
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Email:         order.Email,
		Items:         items,
		Total:         total,
		PaymentMethod: paymentMethod,
		Status:        order.Status,
	}
}
