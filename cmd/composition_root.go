package cmd

import (
	"strconv"

	"wroom/internal/adapters/out/kafka"
	"wroom/internal/adapters/out/postgres"
	"wroom/internal/adapters/out/postgres/orderrepo"
	"wroom/internal/adapters/out/smtp"
	"wroom/internal/core/application/usecases/commands"
	"wroom/internal/core/application/usecases/queries"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/services"
	"wroom/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     *services.AccessPolicy
	publisher  ports.OrderEventPublisher
	notifier   ports.Notifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
	}

	if config.KafkaHost != "" && config.KafkaOrderChangedTopic != "" {
		root.publisher = kafka.NewOrderEventPublisher(
			[]string{config.KafkaHost},
			config.KafkaOrderChangedTopic,
		)
	}

	if config.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(config.SMTPPort)
		if err == nil {
			root.notifier = smtp.NewMailer(
				config.SMTPHost,
				smtpPort,
				config.SMTPUser,
				config.SMTPPassword,
				config.SMTPFrom,
			)
		}
	}

	return root
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.policy, c.publisher)
}

func (c *CompositionRoot) CreateBlockUserCommandHandler() commands.BlockUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBlockUserCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreatePurgeVerificationTokensCommandHandler() commands.PurgeVerificationTokensCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeVerificationTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB, readTracker{}),
		c.policy,
	)
}

// readTracker discards aggregate tracking. Single-order reads run outside
// any unit of work, so there is nothing to track.
type readTracker struct{}

func (readTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
