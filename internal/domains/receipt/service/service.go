package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Receipt=MockReceiptService

import (
	"context"
	"fmt"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/internal/domains/receipt/model"
	"staybook/internal/domains/receipt/model/dto"
	"staybook/internal/domains/receipt/repository"
	"staybook/shared"
	"staybook/shared/cache"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReceipt    = "receipt:get"
	cacheGetAllReceipt = "receipt:gets"
)

type Receipt interface {
	Upsert(ctx context.Context, deviceID string, req dto.SaveReceiptRequest) error
	List(ctx context.Context, deviceID string, params gDto.QueryParams) (dto.GetReceiptsResponse, error)
	Get(ctx context.Context, deviceID, id string) (dto.ReceiptResponse, error)
}

type serviceImpl struct {
	repo  repository.Receipt
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Receipt, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Receipt {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func deviceFilter(deviceID string) gDto.FilterGroup {
	return shared.FilterByID(deviceID, model.FieldDeviceID, model.TableName)
}

// Upsert stores the receipt under its booking id; a repeated id updates the row in place.
func (s *serviceImpl) Upsert(ctx context.Context, deviceID string, req dto.SaveReceiptRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertReceipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if deviceID == "" {
		return failure.MissingDeviceError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Upsert(ctx, req.ToModel(deviceID), model.FieldDeviceID, model.FieldCreatedAt); err != nil {
		log.Error().Err(err).Str("receipt_id", req.ID).Msg("failed to upsert receipt")

		return fmt.Errorf("failed to upsert receipt: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReceipt, deviceID, req.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete receipt from cache")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllReceipt, deviceID))
	}()

	return nil
}

func (s *serviceImpl) List(ctx context.Context, deviceID string, params gDto.QueryParams) (res dto.GetReceiptsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReceipts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if deviceID == "" {
		return res, failure.MissingDeviceError
	}

	params.RestrictSort(model.SortableFields...)
	filter := deviceFilter(deviceID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllReceipt, deviceID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for receipts")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count receipts")

		return res, fmt.Errorf("failed to count receipts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get receipts")

		return res, fmt.Errorf("failed to get receipts: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save receipts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, deviceID, id string) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReceipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if deviceID == "" {
		return res, failure.MissingDeviceError
	}

	cacheKey := shared.BuildCacheKey(cacheGetReceipt, deviceID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for receipt")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{deviceFilter(deviceID), shared.FilterByID(id, model.FieldID, model.TableName)},
	}

	receipt, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("receipt_id", id).Msg("failed to get receipt")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(receipt)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save receipt to cache")
		}
	}()

	return res, nil
}
