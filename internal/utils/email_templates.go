package utils

import "fmt"

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(sessionID, description string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">🦆 Votre canard est commandé !</h2>
		<p>Bonjour,</p>
		<p>Votre commande a bien été enregistrée. Nous préparons votre modèle 3D personnalisé.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<tbody>
				<tr>
					<td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Canard</td>
					<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				</tr>
				<tr>
					<td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Référence</td>
					<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				</tr>
			</tbody>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe DuckStore</strong>
		</p>
	</div>
</body>
</html>`, description, sessionID)
}
