package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/review"
	"kitchen/internal/core/domain/model/session"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ReadModelHandlersTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB
	uow ports.UnitOfWork
}

func TestReadModelHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelHandlersTestSuite))
}

func (suite *ReadModelHandlersTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db, suite.uow = openDatabase(suite.T())
}

func (suite *ReadModelHandlersTestSuite) TestCustomers_ListNewestFirstAndGet() {
	home := mustPoint(suite.T(), 2)
	first := mustCustomer(suite.T(), "9876543210", &home)
	second, err := customer.NewCustomer(mustPhone(suite.T(), "9123456780"), customer.Profile{}, baseTime.Add(time.Hour))
	suite.Require().NoError(err)
	second.ToggleBlock()
	addAll(suite.T(), suite.uow.CustomerRepository().Add, first, second)

	list, err := queries.NewGetCustomersQueryHandler(suite.db).Handle(suite.ctx, queries.NewGetCustomersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("9123456780", list[0].Phone)
	suite.True(list[0].IsBlocked)
	suite.Nil(list[0].LocationLat)

	query, err := queries.NewGetCustomerQuery(first.Phone())
	suite.Require().NoError(err)
	view, err := queries.NewGetCustomerQueryHandler(suite.db).Handle(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Asha", view.Name)
	suite.Require().NotNil(view.LocationLat)
	suite.InDelta(home.Lat(), *view.LocationLat, 1e-9)

	missing, err := queries.NewGetCustomerQuery(mustPhone(suite.T(), "9000000001"))
	suite.Require().NoError(err)
	_, err = queries.NewGetCustomerQueryHandler(suite.db).Handle(suite.ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelHandlersTestSuite) TestMenu_FiltersAndRatings() {
	paneer := mustMenuItem(suite.T(), "Paneer Tikka", "Starters", 180, true)
	soup := mustMenuItem(suite.T(), "Tomato Soup", "Starters", 90, false)
	dal := mustMenuItem(suite.T(), "Dal Makhani", "Mains", 220, true)
	addAll(suite.T(), suite.uow.MenuRepository().Add, paneer, soup, dal)

	delivered := mustOrder(suite.T(), "9876543210", baseTime, order.Delivered, paneer)
	addAll(suite.T(), suite.uow.OrderRepository().Add, delivered)
	suite.addReview(delivered, paneer.ID(), 4)

	handler := queries.NewGetMenuQueryHandler(suite.db)

	all, err := handler.Handle(suite.ctx, queries.NewGetMenuQuery(false, ""))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal([]string{"Dal Makhani", "Paneer Tikka", "Tomato Soup"},
		[]string{all[0].Name, all[1].Name, all[2].Name})
	suite.Nil(all[0].Rating)
	suite.Require().NotNil(all[1].Rating)
	suite.InDelta(4.0, *all[1].Rating, 1e-9)
	suite.Equal(1, all[1].ReviewCount)

	starters, err := handler.Handle(suite.ctx, queries.NewGetMenuQuery(true, "Starters"))
	suite.Require().NoError(err)
	suite.Require().Len(starters, 1)
	suite.Equal(paneer.ID(), starters[0].ID)

	query, err := queries.NewGetMenuItemQuery(soup.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetMenuItemQueryHandler(suite.db).Handle(suite.ctx, query)
	suite.Require().NoError(err)
	suite.False(view.Available)

	missing, err := queries.NewGetMenuItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetMenuItemQueryHandler(suite.db).Handle(suite.ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelHandlersTestSuite) TestBanners_KeepLinks() {
	banners := catalog.DefaultBanners()
	itemID := kernel.NewUUID()
	banners[0].LinkItem(itemID)
	for _, b := range banners {
		suite.Require().NoError(suite.uow.BannerRepository().Add(suite.ctx, b))
	}

	list, err := queries.NewGetBannersQueryHandler(suite.db).Handle(suite.ctx, queries.NewGetBannersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	var linked []kernel.UUID
	for _, b := range list {
		linked = append(linked, b.LinkedItemIDs...)
		suite.NotNil(b.LinkedItemIDs)
	}
	suite.Equal([]kernel.UUID{itemID}, linked)
}

func (suite *ReadModelHandlersTestSuite) TestCategories_MergeMenuAndImages() {
	addAll(suite.T(), suite.uow.MenuRepository().Add,
		mustMenuItem(suite.T(), "Paneer Tikka", "Starters", 180, true),
		mustMenuItem(suite.T(), "Tomato Soup", "Starters", 90, true),
		mustMenuItem(suite.T(), "Dal Makhani", "Mains", 220, true),
	)
	desserts, err := catalog.NewCategory("Desserts", "https://img.example/desserts.png", true)
	suite.Require().NoError(err)
	mains, err := catalog.NewCategory("Mains", "https://img.example/mains.png", false)
	suite.Require().NoError(err)
	addAll(suite.T(), suite.uow.CategoryRepository().Save, desserts, mains)

	handler := queries.NewGetCategoriesQueryHandler(suite.db)

	all, err := handler.Handle(suite.ctx, queries.NewGetCategoriesQuery(false))
	suite.Require().NoError(err)
	suite.Equal([]queries.CategoryView{
		{Name: "Desserts", Image: "https://img.example/desserts.png", Visible: true, ItemCount: 0},
		{Name: "Mains", Image: "https://img.example/mains.png", Visible: false, ItemCount: 1},
		{Name: "Starters", Image: "", Visible: false, ItemCount: 2},
	}, all)

	carousel, err := handler.Handle(suite.ctx, queries.NewGetCategoriesQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(carousel, 1)
	suite.Equal("Desserts", carousel[0].Name)
}

func (suite *ReadModelHandlersTestSuite) TestReviews_Filters() {
	paneer := mustMenuItem(suite.T(), "Paneer Tikka", "Starters", 180, true)
	naan := mustMenuItem(suite.T(), "Butter Naan", "Breads", 50, true)
	first := mustOrder(suite.T(), "9876543210", baseTime, order.Delivered, paneer, naan)
	second := mustOrder(suite.T(), "9876543210", baseTime, order.Delivered, paneer)
	addAll(suite.T(), suite.uow.OrderRepository().Add, first, second)

	suite.addReview(first, paneer.ID(), 5)
	suite.addReview(first, naan.ID(), 3)
	latest := suite.addReviewAt(second, paneer.ID(), 4, baseTime.Add(time.Hour))

	handler := queries.NewGetReviewsQueryHandler(suite.db)

	all, err := handler.Handle(suite.ctx, queries.NewGetReviewsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(latest.ID(), all[0].ID)

	byItem, err := queries.NewGetItemReviewsQuery(paneer.ID())
	suite.Require().NoError(err)
	itemReviews, err := handler.Handle(suite.ctx, byItem)
	suite.Require().NoError(err)
	suite.Len(itemReviews, 2)

	byOrder, err := queries.NewGetOrderReviewsQuery(first.ID())
	suite.Require().NoError(err)
	orderReviews, err := handler.Handle(suite.ctx, byOrder)
	suite.Require().NoError(err)
	suite.Len(orderReviews, 2)
	for _, r := range orderReviews {
		suite.Equal(first.ID(), r.OrderID)
	}
}

func (suite *ReadModelHandlersTestSuite) TestAuthenticateMerchant() {
	now := baseTime
	live, token, err := session.Issue("owner", now, time.Hour)
	suite.Require().NoError(err)
	expired, expiredToken, err := session.Issue("owner", now.Add(-2*time.Hour), time.Hour)
	suite.Require().NoError(err)
	addAll(suite.T(), suite.uow.SessionRepository().Add, live, expired)

	handler := queries.NewAuthenticateMerchantQueryHandler(suite.db, clock.NewFixed(now))

	query, err := queries.NewAuthenticateMerchantQuery(" " + token + " ")
	suite.Require().NoError(err)
	username, err := handler.Handle(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal("owner", username)

	for _, rejected := range []string{expiredToken, "not-a-token"} {
		query, err = queries.NewAuthenticateMerchantQuery(rejected)
		suite.Require().NoError(err)
		_, err = handler.Handle(suite.ctx, query)
		suite.Require().ErrorIs(err, errs.ErrUnauthorized)
	}

	_, err = queries.NewAuthenticateMerchantQuery("  ")
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *ReadModelHandlersTestSuite) addReview(o *order.Order, itemID kernel.UUID, stars int) *review.Review {
	return suite.addReviewAt(o, itemID, stars, baseTime)
}

func (suite *ReadModelHandlersTestSuite) addReviewAt(
	o *order.Order,
	itemID kernel.UUID,
	stars int,
	at time.Time,
) *review.Review {
	r, err := review.NewReview(kernel.NewUUID(), o, itemID, o.Recipient().Phone, "Asha", stars, "", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ReviewRepository().Add(suite.ctx, r))
	return r
}
