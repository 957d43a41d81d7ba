package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/enterprise-brain-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-brain-api/pkg/config"
	"github.com/jhoicas/enterprise-brain-api/pkg/jwt"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brainctl",
		Short:         "Herramientas de operación de Enterprise Brain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTokenCmd(), newResolveCmd())
	return root
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Firmar un JWT de consola con JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE:  runToken,
	}
	cmd.Flags().String("user", "", "identificador del usuario")
	cmd.Flags().String("role", jwt.RoleViewer, "rol: admin | viewer")
	cmd.Flags().Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	user, _ := cmd.Flags().GetString("user")
	role, _ := cmd.Flags().GetString("role")
	exp, _ := cmd.Flags().GetInt("exp")

	if role != jwt.RoleAdmin && role != jwt.RoleViewer {
		return fmt.Errorf("rol no soportado: %q", role)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if exp <= 0 {
		exp = cfg.JWT.Expiration
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, user, role, cfg.JWT.Issuer, exp)
	if err != nil {
		return fmt.Errorf("firmar token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <category> [name...]",
		Short: "Resolver nombres visibles a su identificador",
		Long: "Imprime una línea por nombre: nombre, ID y ruta. Los nombres desconocidos\n" +
			"se marcan con '(default)'. Sin nombres se resuelve la cadena vacía.",
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	names := args[1:]
	if len(names) == 0 {
		names = []string{""}
	}
	out, err := usecase.NewNavigationUseCase().ResolveBatch(args[0], names)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, r := range out.Items {
		line := []string{fmt.Sprintf("%q", r.Name), r.ID, r.Route}
		if !r.Matched {
			line = append(line, "(default)")
		}
		fmt.Fprintln(w, strings.Join(line, "\t"))
	}
	return nil
}
