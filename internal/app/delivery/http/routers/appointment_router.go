package routers

import (
	"clinicsync-service/internal/app/delivery/http/controllers"
	"clinicsync-service/internal/app/delivery/http/middlewares"
	"clinicsync-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	partitionPattern := fmt.Sprintf("/{%s:today|future|past}", constvars.URLParamPartition)
	appointmentIDPattern := fmt.Sprintf("/{%s:[0-9]+}", constvars.URLParamAppointmentID)

	router.With(middlewares.BearerToken).Get(partitionPattern, appointmentController.List)
	router.With(middlewares.BearerToken).Put(partitionPattern+"/search", appointmentController.Search)
	router.With(middlewares.BearerToken).Post("/", appointmentController.Create)
	router.With(middlewares.BearerToken).Put(appointmentIDPattern, appointmentController.Update)
	router.With(middlewares.BearerToken).Delete(appointmentIDPattern, appointmentController.Delete)
	router.With(middlewares.BearerToken).Put(appointmentIDPattern+"/move", appointmentController.Move)
}
