package components

import (
	"course-checkout/internal/infra"
	infrainvoice "course-checkout/internal/infra/invoice"
	"course-checkout/internal/infra/repository"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewCourseRepository,
			fx.As(new(commands.CourseRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repository.NewReceiptRepository,
			fx.As(new(commands.ReceiptRepository)),
		),
		fx.Annotate(
			repository.NewReceiptReadStore,
			fx.As(new(queries.ReceiptReadStore)),
		),
		fx.Annotate(
			repository.NewInvoiceReadStore,
			fx.As(new(commands.InvoiceReadStore)),
		),
		fx.Annotate(
			infra.NewLocalFileStore,
			fx.As(new(commands.FileStore)),
		),
		fx.Annotate(
			infrainvoice.NewClient,
			fx.As(new(commands.InvoiceAPI)),
		),
	),
)
