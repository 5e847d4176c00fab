package routers

import (
	"fmt"
	"wellness-wizard/internal/app/delivery/http/controllers"
	"wellness-wizard/internal/app/delivery/http/middlewares"
	"wellness-wizard/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWizardRoutes(router chi.Router, middlewares *middlewares.Middlewares, wizardController *controllers.WizardController) {
	router.Post("/", wizardController.Create)

	router.Route(fmt.Sprintf("/{%s}", constvars.URLParamWizardID), func(r chi.Router) {
		r.Get("/", wizardController.Find)
		r.Delete("/", wizardController.Abandon)
		r.Get("/patients", wizardController.FindPatients)
		r.Post("/patient", wizardController.SelectPatient)
		r.Post("/start", wizardController.Start)
		r.Post("/answers", wizardController.SubmitAnswer)
		r.Post("/back", wizardController.GoBack)
		r.Post("/camera", wizardController.OpenCamera)
		r.Post("/camera/capture", wizardController.CaptureEye)
		r.Post("/iridology", wizardController.SubmitIridology)
		r.Post("/iridology/skip", wizardController.SkipIridology)
		r.Post("/complete", wizardController.Complete)
		r.Post("/retry", wizardController.Retry)
		r.Get("/results", wizardController.FindResults)
		r.Get("/report", wizardController.FindReport)
		r.Post("/report/pdf", wizardController.GenerateReport)
	})
}
