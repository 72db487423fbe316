//go:build integration

package sqlcrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"rajaprint-backend/internal/domain"
	sqlcrepo "rajaprint-backend/internal/repository/sqlc"
)

type ShippingZoneRepositorySuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   domain.ShippingZoneRepository
	orders domain.OrderRepository
}

func (s *ShippingZoneRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = sqlcrepo.NewShippingZoneRepository(tcPool)
	s.orders = sqlcrepo.NewOrderRepository(tcPool)
}

func (s *ShippingZoneRepositorySuite) SetupTest() {
	s.Require().NoError(truncateAll(context.Background(), s.pool))
}

func (s *ShippingZoneRepositorySuite) newZone(name string, priority int, cities ...string) *domain.ShippingZone {
	zone := &domain.ShippingZone{
		Name:            name,
		Cities:          cities,
		Country:         domain.DefaultZoneCountry,
		BasePrice:       200,
		BaseWeightKg:    1,
		PricePerExtraKg: 100,
		DeliveryTimeMin: 2,
		DeliveryTimeMax: 4,
		IsActive:        true,
		Priority:        priority,
	}
	s.Require().NoError(s.repo.Create(context.Background(), zone))
	return zone
}

func (s *ShippingZoneRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()
	threshold := 5000.0
	punjab := domain.ProvincePunjab

	in := &domain.ShippingZone{
		Name:                  "Punjab Wide",
		Country:               domain.DefaultZoneCountry,
		Province:              &punjab,
		BasePrice:             250,
		BaseWeightKg:          1,
		PricePerExtraKg:       120.5,
		DeliveryTimeMin:       3,
		DeliveryTimeMax:       5,
		FreeShippingThreshold: &threshold,
		IsActive:              true,
		Priority:              20,
	}
	s.Require().NoError(s.repo.Create(ctx, in))
	s.Require().NotEmpty(in.ID)
	s.NotNil(in.Cities)

	got, err := s.repo.GetByID(ctx, in.ID)
	s.Require().NoError(err)
	s.Equal("Punjab Wide", got.Name)
	s.Require().NotNil(got.Province)
	s.Equal(domain.ProvincePunjab, *got.Province)
	s.Equal(120.5, got.PricePerExtraKg)
	s.Require().NotNil(got.FreeShippingThreshold)
	s.Equal(5000.0, *got.FreeShippingThreshold)
	s.False(got.IsDefault)
}

func (s *ShippingZoneRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000001")
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.repo.GetByID(context.Background(), "not-a-uuid")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ShippingZoneRepositorySuite) TestCreate_DuplicateNameIgnoresCase() {
	s.newZone("Lahore Metro", 10, "Lahore")

	dup := &domain.ShippingZone{
		Name:         "lahore metro",
		Cities:       []string{"Kasur"},
		Country:      domain.DefaultZoneCountry,
		BaseWeightKg: 1,
		IsActive:     true,
	}
	err := s.repo.Create(context.Background(), dup)
	s.ErrorIs(err, domain.ErrZoneConstraint)
}

func (s *ShippingZoneRepositorySuite) TestActiveByPriority_Order() {
	ctx := context.Background()
	far := s.newZone("Far", 90, "Gwadar")
	s.newZone("Near", 10, "Lahore")
	s.newZone("Middle", 50, "Multan")

	_, err := s.repo.SetActive(ctx, far.ID, false)
	s.Require().NoError(err)

	zones, err := s.repo.ActiveByPriority(ctx)
	s.Require().NoError(err)
	s.Require().Len(zones, 2)
	s.Equal("Near", zones[0].Name)
	s.Equal("Middle", zones[1].Name)

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Far", all[0].Name)
}

func (s *ShippingZoneRepositorySuite) TestSetDefault_Exclusive() {
	ctx := context.Background()
	a := s.newZone("Zone A", 10, "Lahore")
	b := s.newZone("Zone B", 20, "Karachi")

	def, err := s.repo.FindDefault(ctx)
	s.Require().NoError(err)
	s.Nil(def)

	_, err = s.repo.SetDefault(ctx, a.ID)
	s.Require().NoError(err)
	got, err := s.repo.SetDefault(ctx, b.ID)
	s.Require().NoError(err)
	s.True(got.IsDefault)

	def, err = s.repo.FindDefault(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(def)
	s.Equal(b.ID, def.ID)

	reloaded, err := s.repo.GetByID(ctx, a.ID)
	s.Require().NoError(err)
	s.False(reloaded.IsDefault)
}

func (s *ShippingZoneRepositorySuite) TestSetDefault_Concurrent() {
	ctx := context.Background()
	ids := make([]string, 8)
	for i := range ids {
		ids[i] = s.newZone(string(rune('A'+i))+" zone", 10+i, "City"+string(rune('A'+i))).ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := s.repo.SetDefault(ctx, id); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	var defaults int
	s.Require().NoError(s.pool.QueryRow(ctx, `SELECT count(*) FROM shipping_zones WHERE is_default`).Scan(&defaults))
	s.Equal(1, defaults)
}

func (s *ShippingZoneRepositorySuite) TestCreateAndUpdate_DefaultFlag() {
	ctx := context.Background()
	a := s.newZone("Zone A", 10, "Lahore")
	_, err := s.repo.SetDefault(ctx, a.ID)
	s.Require().NoError(err)

	b := &domain.ShippingZone{
		Name: "Zone B", Cities: []string{"Quetta"}, Country: domain.DefaultZoneCountry,
		BaseWeightKg: 1, DeliveryTimeMax: 5, IsActive: true, IsDefault: true,
	}
	s.Require().NoError(s.repo.Create(ctx, b))
	s.True(b.IsDefault)

	a, err = s.repo.GetByID(ctx, a.ID)
	s.Require().NoError(err)
	s.False(a.IsDefault)

	b.Priority = 3
	s.Require().NoError(s.repo.Update(ctx, b))
	s.True(b.IsDefault)

	b.IsDefault = false
	s.Require().NoError(s.repo.Update(ctx, b))
	s.False(b.IsDefault)

	def, err := s.repo.FindDefault(ctx)
	s.Require().NoError(err)
	s.Nil(def)
}

func (s *ShippingZoneRepositorySuite) TestDelete() {
	ctx := context.Background()
	zone := s.newZone("Disposable", 10, "Sukkur")

	s.Require().NoError(s.repo.Delete(ctx, zone.ID))
	s.ErrorIs(s.repo.Delete(ctx, zone.ID), domain.ErrNotFound)
}

func (s *ShippingZoneRepositorySuite) TestDelete_ReferencedByOrder() {
	ctx := context.Background()
	zone := s.newZone("Busy", 10, "Lahore")

	order := &domain.Order{
		CustomerName:  "Ali",
		CustomerEmail: "ali@example.com",
		ShippingAddress: domain.ShippingAddress{
			AddressLine1: "1 Mall Road", City: "Lahore", Country: "Pakistan",
		},
		ShippingDetails: &domain.ShippingDetails{ZoneID: zone.ID, ZoneName: zone.Name},
		ItemsPrice:      100,
		ShippingPrice:   200,
		TotalPrice:      300,
		Status:          domain.OrderStatusPending,
		PaymentMethod:   domain.PaymentMethodCash,
	}
	s.Require().NoError(s.orders.CreateOrder(ctx, order))

	s.ErrorIs(s.repo.Delete(ctx, zone.ID), domain.ErrZoneConstraint)
}

func TestShippingZoneRepositorySuite(t *testing.T) {
	suite.Run(t, new(ShippingZoneRepositorySuite))
}
