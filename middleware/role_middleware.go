package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "talent-park-backend/lib/utils/auth-utils"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func JobSeekerRequired() fiber.Handler {
	return roleRequired(models.JobSeekerRole)
}

func EmployerRequired() fiber.Handler {
	return roleRequired(models.EmployerRole)
}

func roleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != role {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("access denied for role " + GetUserRole(ctx).ToHuman()))
		}
		return ctx.Next()
	}
}
